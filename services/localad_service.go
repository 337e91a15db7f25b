package services

import (
	"context"
	"time"

	"challengecards/models"
	apperrors "challengecards/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocalAdService manages the local_ads collection.
type LocalAdService struct {
	ads *mongo.Collection
}

func NewLocalAdService(database *mongo.Database) *LocalAdService {
	return &LocalAdService{ads: database.Collection("local_ads")}
}

type CreateLocalAdInput struct {
	Label    string  `json:"label" binding:"required"`
	ImageURL string  `json:"imageUrl" binding:"required"`
	LinkURL  *string `json:"linkUrl"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

type UpdateLocalAdInput struct {
	Label    *string `json:"label"`
	ImageURL *string `json:"imageUrl"`
	LinkURL  *string `json:"linkUrl"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

func (s *LocalAdService) List(ctx context.Context) ([]models.LocalAd, error) {
	return s.list(ctx, bson.M{})
}

func (s *LocalAdService) ListActive(ctx context.Context) ([]models.LocalAd, error) {
	return s.list(ctx, bson.M{"isActive": true})
}

func (s *LocalAdService) list(ctx context.Context, filter bson.M) ([]models.LocalAd, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := s.ads.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list ads", err)
	}

	ads := []models.LocalAd{}
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, apperrors.Internal("failed to decode ads", err)
	}
	return ads, nil
}

// Create appends the ad at the end of the rotation unless an explicit order
// is given.
func (s *LocalAdService) Create(ctx context.Context, input CreateLocalAdInput) (*models.LocalAd, error) {
	now := time.Now()
	ad := models.LocalAd{
		Label:     input.Label,
		ImageURL:  input.ImageURL,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.LinkURL != nil {
		ad.LinkURL = *input.LinkURL
	}
	if input.IsActive != nil {
		ad.IsActive = *input.IsActive
	}
	if input.Order != nil {
		ad.Order = *input.Order
	} else {
		count, err := s.ads.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, apperrors.Internal("failed to count ads", err)
		}
		ad.Order = int(count)
	}

	result, err := s.ads.InsertOne(ctx, ad)
	if err != nil {
		return nil, apperrors.Internal("failed to create ad", err)
	}
	ad.ID = result.InsertedID.(primitive.ObjectID)
	return &ad, nil
}

func (s *LocalAdService) Update(ctx context.Context, id string, input UpdateLocalAdInput) (*models.LocalAd, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid ad id")
	}

	update := buildLocalAdUpdate(input)

	var ad models.LocalAd
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.ads.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&ad)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Ad", err)
		}
		return nil, apperrors.Internal("failed to update ad", err)
	}
	return &ad, nil
}

// Toggle flips isActive.
func (s *LocalAdService) Toggle(ctx context.Context, id string) (*models.LocalAd, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid ad id")
	}

	update := bson.A{bson.M{"$set": bson.M{
		"isActive":  bson.M{"$not": "$isActive"},
		"updatedAt": "$$NOW",
	}}}

	var ad models.LocalAd
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.ads.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&ad)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Ad", err)
		}
		return nil, apperrors.Internal("failed to toggle ad", err)
	}
	return &ad, nil
}

func (s *LocalAdService) Remove(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("invalid ad id")
	}

	result, err := s.ads.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Internal("failed to delete ad", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Ad", nil)
	}
	return nil
}

// Reorder writes order = index for every id in the given sequence as
// independent per-id updates. A mid-sequence failure leaves the already
// written orders in place; there is no rollback.
func (s *LocalAdService) Reorder(ctx context.Context, ids []string) error {
	assignments, err := orderAssignments(ids)
	if err != nil {
		return err
	}

	for _, a := range assignments {
		update := bson.M{"$set": bson.M{"order": a.order, "updatedAt": time.Now()}}
		if _, err := s.ads.UpdateOne(ctx, bson.M{"_id": a.id}, update); err != nil {
			return apperrors.Internal("failed to reorder ads", err)
		}
	}
	return nil
}

type orderAssignment struct {
	id    primitive.ObjectID
	order int
}

// orderAssignments parses every id up front so a malformed id rejects the
// whole request before any order is written.
func orderAssignments(ids []string) ([]orderAssignment, error) {
	assignments := make([]orderAssignment, 0, len(ids))
	for index, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.Validation("invalid ad id")
		}
		assignments = append(assignments, orderAssignment{id: objectID, order: index})
	}
	return assignments, nil
}

func buildLocalAdUpdate(input UpdateLocalAdInput) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if input.Label != nil {
		update["label"] = *input.Label
	}
	if input.ImageURL != nil {
		update["imageUrl"] = *input.ImageURL
	}
	if input.LinkURL != nil {
		update["linkUrl"] = *input.LinkURL
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}
	if input.Order != nil {
		update["order"] = *input.Order
	}
	return update
}
