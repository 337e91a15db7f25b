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

// PackService manages the packs collection.
type PackService struct {
	packs *mongo.Collection
}

func NewPackService(database *mongo.Database) *PackService {
	return &PackService{packs: database.Collection("packs")}
}

type CreatePackInput struct {
	Slug          string               `json:"slug" binding:"required,min=2"`
	Title         models.LocalizedText `json:"title" binding:"required"`
	Description   models.LocalizedText `json:"description" binding:"required"`
	Mode          string               `json:"mode" binding:"required,min=2"`
	AgeRating     string               `json:"ageRating" binding:"omitempty,oneof=all 18+"`
	IsActive      *bool                `json:"isActive"`
	CoverImageURL *string              `json:"coverImageUrl"`
	SortOrder     *int                 `json:"sortOrder"`
}

type UpdatePackInput struct {
	Slug          *string              `json:"slug" binding:"omitempty,min=2"`
	Title         models.LocalizedText `json:"title"`
	Description   models.LocalizedText `json:"description"`
	Mode          *string              `json:"mode" binding:"omitempty,min=2"`
	AgeRating     *string              `json:"ageRating" binding:"omitempty,oneof=all 18+"`
	IsActive      *bool                `json:"isActive"`
	CoverImageURL *string              `json:"coverImageUrl"`
	SortOrder     *int                 `json:"sortOrder"`
}

// PackFilters is an exact-match filter set; zero values are omitted from the
// query rather than matched against.
type PackFilters struct {
	Mode      string
	AgeRating string
	IsActive  *bool
}

func (s *PackService) Create(ctx context.Context, input CreatePackInput) (*models.Pack, error) {
	now := time.Now()
	pack := models.Pack{
		Slug:        normalizeSlug(input.Slug),
		Title:       input.Title,
		Description: input.Description,
		Mode:        normalizeSlug(input.Mode),
		AgeRating:   "all",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.AgeRating != "" {
		pack.AgeRating = input.AgeRating
	}
	if input.IsActive != nil {
		pack.IsActive = *input.IsActive
	}
	if input.CoverImageURL != nil {
		pack.CoverImageURL = *input.CoverImageURL
	}
	if input.SortOrder != nil {
		pack.SortOrder = *input.SortOrder
	}

	result, err := s.packs.InsertOne(ctx, pack)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("slug already in use")
		}
		return nil, apperrors.Internal("failed to create pack", err)
	}
	pack.ID = result.InsertedID.(primitive.ObjectID)
	return &pack, nil
}

func (s *PackService) List(ctx context.Context, filters PackFilters) ([]models.Pack, error) {
	filter := buildPackFilter(filters)

	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := s.packs.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list packs", err)
	}

	packs := []models.Pack{}
	if err := cursor.All(ctx, &packs); err != nil {
		return nil, apperrors.Internal("failed to decode packs", err)
	}
	return packs, nil
}

func (s *PackService) Get(ctx context.Context, id string) (*models.Pack, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid pack id")
	}

	var pack models.Pack
	err = s.packs.FindOne(ctx, bson.M{"_id": objectID}).Decode(&pack)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Pack", err)
		}
		return nil, apperrors.Internal("failed to fetch pack", err)
	}
	return &pack, nil
}

func (s *PackService) GetBySlug(ctx context.Context, slug string) (*models.Pack, error) {
	var pack models.Pack
	err := s.packs.FindOne(ctx, bson.M{"slug": normalizeSlug(slug)}).Decode(&pack)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Pack", err)
		}
		return nil, apperrors.Internal("failed to fetch pack", err)
	}
	return &pack, nil
}

func (s *PackService) Update(ctx context.Context, id string, input UpdatePackInput) (*models.Pack, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid pack id")
	}

	update := buildPackUpdate(input)

	var pack models.Pack
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.packs.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&pack)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Pack", err)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("slug already in use")
		}
		return nil, apperrors.Internal("failed to update pack", err)
	}
	return &pack, nil
}

// Remove deletes a pack. Its cards keep their packId reference.
func (s *PackService) Remove(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("invalid pack id")
	}

	result, err := s.packs.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Internal("failed to delete pack", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Pack", nil)
	}
	return nil
}

func buildPackFilter(filters PackFilters) bson.M {
	filter := bson.M{}
	if filters.Mode != "" {
		filter["mode"] = filters.Mode
	}
	if filters.AgeRating != "" {
		filter["ageRating"] = filters.AgeRating
	}
	if filters.IsActive != nil {
		filter["isActive"] = *filters.IsActive
	}
	return filter
}

func buildPackUpdate(input UpdatePackInput) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if input.Slug != nil {
		update["slug"] = normalizeSlug(*input.Slug)
	}
	if input.Title != nil {
		update["title"] = input.Title
	}
	if input.Description != nil {
		update["description"] = input.Description
	}
	if input.Mode != nil {
		update["mode"] = normalizeSlug(*input.Mode)
	}
	if input.AgeRating != nil {
		update["ageRating"] = *input.AgeRating
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}
	if input.CoverImageURL != nil {
		update["coverImageUrl"] = *input.CoverImageURL
	}
	if input.SortOrder != nil {
		update["sortOrder"] = *input.SortOrder
	}
	return update
}
