package services

import (
	"context"
	"log"
	"time"

	"challengecards/models"
	apperrors "challengecards/pkg/errors"
	"challengecards/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminService manages console accounts and issues their bearer tokens.
type AdminService struct {
	admins        *mongo.Collection
	jwtSecret     string
	expiryMinutes int
}

func NewAdminService(database *mongo.Database, jwtSecret string, expiryMinutes int) *AdminService {
	return &AdminService{
		admins:        database.Collection("admin_users"),
		jwtSecret:     jwtSecret,
		expiryMinutes: expiryMinutes,
	}
}

type LoginInput struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateAdminInput struct {
	UserID   string `json:"userId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin editor"`
}

type LoginResult struct {
	AccessToken string            `json:"accessToken"`
	User        *models.AdminUser `json:"user"`
}

func (s *AdminService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	var admin models.AdminUser
	err := s.admins.FindOne(ctx, bson.M{"userId": input.UserID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.Unauthorized("Invalid credentials", err)
		}
		return nil, apperrors.Internal("failed to fetch admin user", err)
	}
	if !admin.IsActive {
		return nil, apperrors.Unauthorized("Invalid credentials", nil)
	}

	if !utils.CheckPasswordHash(input.Password, admin.PasswordHash) {
		return nil, apperrors.Unauthorized("Invalid credentials", nil)
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), admin.UserID, admin.Role, s.jwtSecret, s.expiryMinutes)
	if err != nil {
		return nil, apperrors.Internal("failed to generate token", err)
	}

	return &LoginResult{AccessToken: token, User: &admin}, nil
}

func (s *AdminService) Create(ctx context.Context, input CreateAdminInput) (*models.AdminUser, error) {
	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	now := time.Now()
	admin := models.AdminUser{
		UserID:       input.UserID,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := s.admins.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("User ID already in use")
		}
		return nil, apperrors.Internal("failed to create admin user", err)
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return &admin, nil
}

func (s *AdminService) List(ctx context.Context) ([]models.AdminUser, error) {
	opts := options.Find().SetProjection(bson.M{"passwordHash": 0})
	cursor, err := s.admins.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list admin users", err)
	}

	admins := []models.AdminUser{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, apperrors.Internal("failed to decode admin users", err)
	}
	return admins, nil
}

// GetByID fetches an account for the auth middleware.
func (s *AdminService) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid admin id")
	}

	var admin models.AdminUser
	err = s.admins.FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("AdminUser", err)
		}
		return nil, apperrors.Internal("failed to fetch admin user", err)
	}
	return &admin, nil
}

// Seed creates the bootstrap admin account on first boot. A no-op when the
// credentials are unset or the account already exists.
func (s *AdminService) Seed(ctx context.Context, userID, password, name string) error {
	if userID == "" || password == "" {
		return nil
	}

	err := s.admins.FindOne(ctx, bson.M{"userId": userID}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return apperrors.Internal("failed to check for seed admin", err)
	}

	_, err = s.Create(ctx, CreateAdminInput{
		UserID:   userID,
		Name:     name,
		Password: password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		// A concurrent boot may have seeded it first.
		if apperrors.Is(err, "CONFLICT") {
			return nil
		}
		return err
	}

	log.Printf("Seeded admin user: %s", userID)
	return nil
}
