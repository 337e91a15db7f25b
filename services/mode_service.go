package services

import (
	"context"
	"strings"
	"time"

	"challengecards/models"
	apperrors "challengecards/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ModeService manages the game_modes collection.
type ModeService struct {
	modes *mongo.Collection
}

func NewModeService(database *mongo.Database) *ModeService {
	return &ModeService{modes: database.Collection("game_modes")}
}

type CreateModeInput struct {
	Slug        string               `json:"slug" binding:"required,min=2"`
	Name        models.LocalizedText `json:"name" binding:"required"`
	Description models.LocalizedText `json:"description" binding:"required"`
	IsActive    *bool                `json:"isActive"`
	SortOrder   *int                 `json:"sortOrder"`
}

type UpdateModeInput struct {
	Slug        *string              `json:"slug" binding:"omitempty,min=2"`
	Name        models.LocalizedText `json:"name"`
	Description models.LocalizedText `json:"description"`
	IsActive    *bool                `json:"isActive"`
	SortOrder   *int                 `json:"sortOrder"`
}

func (s *ModeService) Create(ctx context.Context, input CreateModeInput) (*models.GameMode, error) {
	now := time.Now()
	mode := models.GameMode{
		Slug:        normalizeSlug(input.Slug),
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
		SortOrder:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		mode.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		mode.SortOrder = *input.SortOrder
	}

	result, err := s.modes.InsertOne(ctx, mode)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("slug already in use")
		}
		return nil, apperrors.Internal("failed to create game mode", err)
	}
	mode.ID = result.InsertedID.(primitive.ObjectID)
	return &mode, nil
}

// List returns all modes, or only active ones, sorted for display.
func (s *ModeService) List(ctx context.Context, onlyActive bool) ([]models.GameMode, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := s.modes.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list game modes", err)
	}

	modes := []models.GameMode{}
	if err := cursor.All(ctx, &modes); err != nil {
		return nil, apperrors.Internal("failed to decode game modes", err)
	}
	return modes, nil
}

func (s *ModeService) Get(ctx context.Context, id string) (*models.GameMode, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid mode id")
	}

	var mode models.GameMode
	err = s.modes.FindOne(ctx, bson.M{"_id": objectID}).Decode(&mode)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("GameMode", err)
		}
		return nil, apperrors.Internal("failed to fetch game mode", err)
	}
	return &mode, nil
}

func (s *ModeService) Update(ctx context.Context, id string, input UpdateModeInput) (*models.GameMode, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid mode id")
	}

	update := buildModeUpdate(input)

	var mode models.GameMode
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.modes.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&mode)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("GameMode", err)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("slug already in use")
		}
		return nil, apperrors.Internal("failed to update game mode", err)
	}
	return &mode, nil
}

// Remove deletes a mode. Packs referencing its slug are left untouched.
func (s *ModeService) Remove(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("invalid mode id")
	}

	result, err := s.modes.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Internal("failed to delete game mode", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("GameMode", nil)
	}
	return nil
}

func buildModeUpdate(input UpdateModeInput) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if input.Slug != nil {
		update["slug"] = normalizeSlug(*input.Slug)
	}
	if input.Name != nil {
		update["name"] = input.Name
	}
	if input.Description != nil {
		update["description"] = input.Description
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}
	if input.SortOrder != nil {
		update["sortOrder"] = *input.SortOrder
	}
	return update
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
