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

// CardService manages the cards collection.
type CardService struct {
	cards *mongo.Collection
}

func NewCardService(database *mongo.Database) *CardService {
	return &CardService{cards: database.Collection("cards")}
}

type CreateCardInput struct {
	PackID     string               `json:"packId" binding:"required"`
	Type       string               `json:"type" binding:"required,oneof=question dare vote punishment bonus minigame"`
	Text       models.LocalizedText `json:"text" binding:"required"`
	Tags       []string             `json:"tags"`
	Difficulty string               `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	AgeRating  string               `json:"ageRating" binding:"omitempty,oneof=all 18+"`
	DiceCount  *int                 `json:"diceCount" binding:"omitempty,min=0,max=6"`
	IsActive   *bool                `json:"isActive"`
	Status     string               `json:"status" binding:"omitempty,oneof=draft review published"`
}

// CreateImageCardInput accepts text, diceCount and contentSource so that
// arbitrary client payloads bind cleanly, but those three fields are
// overridden unconditionally: image cards always persist with an empty text
// map, zero dice and contentSource "image".
type CreateImageCardInput struct {
	PackID        string               `json:"packId" binding:"required"`
	Type          string               `json:"type" binding:"required,oneof=question dare vote punishment bonus minigame"`
	Tags          []string             `json:"tags"`
	Difficulty    string               `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	AgeRating     string               `json:"ageRating" binding:"omitempty,oneof=all 18+"`
	Status        string               `json:"status" binding:"omitempty,oneof=draft review published"`
	ImageURL      string               `json:"imageUrl" binding:"required"`
	ImageMeta     *models.ImageMeta    `json:"imageMeta"`
	Text          models.LocalizedText `json:"text"`
	DiceCount     *int                 `json:"diceCount"`
	ContentSource string               `json:"contentSource"`
}

type UpdateCardInput struct {
	PackID     *string              `json:"packId"`
	Type       *string              `json:"type" binding:"omitempty,oneof=question dare vote punishment bonus minigame"`
	Text       models.LocalizedText `json:"text"`
	Tags       []string             `json:"tags"`
	Difficulty *string              `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	AgeRating  *string              `json:"ageRating" binding:"omitempty,oneof=all 18+"`
	DiceCount  *int                 `json:"diceCount" binding:"omitempty,min=0,max=6"`
	IsActive   *bool                `json:"isActive"`
	Status     *string              `json:"status" binding:"omitempty,oneof=draft review published"`
	ImageURL   *string              `json:"imageUrl"`
	ImageMeta  *models.ImageMeta    `json:"imageMeta"`
}

// CardFilters is an exact-match filter set; zero values are omitted from the
// query rather than matched against.
type CardFilters struct {
	PackID    string
	Type      string
	AgeRating string
	Status    string
	IsActive  *bool
}

func (s *CardService) Create(ctx context.Context, input CreateCardInput) (*models.Card, error) {
	card, err := newCardDocument(input)
	if err != nil {
		return nil, err
	}

	result, err := s.cards.InsertOne(ctx, card)
	if err != nil {
		return nil, apperrors.Internal("failed to create card", err)
	}
	card.ID = result.InsertedID.(primitive.ObjectID)
	return card, nil
}

// CreateFromImage creates an image-sourced card. The override of text,
// diceCount and contentSource is authoritative, not a default.
func (s *CardService) CreateFromImage(ctx context.Context, input CreateImageCardInput) (*models.Card, error) {
	card, err := newImageCardDocument(input)
	if err != nil {
		return nil, err
	}

	result, err := s.cards.InsertOne(ctx, card)
	if err != nil {
		return nil, apperrors.Internal("failed to create card", err)
	}
	card.ID = result.InsertedID.(primitive.ObjectID)
	return card, nil
}

func (s *CardService) List(ctx context.Context, filters CardFilters) ([]models.Card, error) {
	filter, err := buildCardFilter(filters)
	if err != nil {
		return nil, err
	}

	cursor, err := s.cards.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list cards", err)
	}

	cards := []models.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, apperrors.Internal("failed to decode cards", err)
	}
	return cards, nil
}

// ListForPlay returns the cards mobile clients draw from: published, active,
// and rated "all" or the requested rating.
func (s *CardService) ListForPlay(ctx context.Context, packID, ageRating string) ([]models.Card, error) {
	packObjectID, err := primitive.ObjectIDFromHex(packID)
	if err != nil {
		return nil, apperrors.Validation("invalid pack id")
	}

	filter := bson.M{
		"packId":   packObjectID,
		"isActive": true,
		"status":   models.StatusPublished,
	}
	if ageRating != "" {
		filter["ageRating"] = bson.M{"$in": []string{"all", ageRating}}
	}

	cursor, err := s.cards.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list cards", err)
	}

	cards := []models.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, apperrors.Internal("failed to decode cards", err)
	}
	return cards, nil
}

func (s *CardService) Get(ctx context.Context, id string) (*models.Card, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid card id")
	}

	var card models.Card
	err = s.cards.FindOne(ctx, bson.M{"_id": objectID}).Decode(&card)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Card", err)
		}
		return nil, apperrors.Internal("failed to fetch card", err)
	}
	return &card, nil
}

func (s *CardService) Update(ctx context.Context, id string, input UpdateCardInput) (*models.Card, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid card id")
	}

	update, err := buildCardUpdate(input)
	if err != nil {
		return nil, err
	}

	var card models.Card
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.cards.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&card)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Card", err)
		}
		return nil, apperrors.Internal("failed to update card", err)
	}
	return &card, nil
}

func (s *CardService) Remove(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("invalid card id")
	}

	result, err := s.cards.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Internal("failed to delete card", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Card", nil)
	}
	return nil
}

// BulkSetStatus overwrites the status of every card in a pack, or of every
// card in the collection when packID is empty. A single UpdateMany, no
// per-card result reporting.
func (s *CardService) BulkSetStatus(ctx context.Context, packID, status string) error {
	filter := bson.M{}
	if packID != "" {
		packObjectID, err := primitive.ObjectIDFromHex(packID)
		if err != nil {
			return apperrors.Validation("invalid pack id")
		}
		filter["packId"] = packObjectID
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	if _, err := s.cards.UpdateMany(ctx, filter, update); err != nil {
		return apperrors.Internal("failed to update card statuses", err)
	}
	return nil
}

// CountPublished counts published cards, scoped to a pack when packID is set.
func (s *CardService) CountPublished(ctx context.Context, packID string) (int64, error) {
	filter := bson.M{"status": models.StatusPublished}
	if packID != "" {
		packObjectID, err := primitive.ObjectIDFromHex(packID)
		if err != nil {
			return 0, apperrors.Validation("invalid pack id")
		}
		filter["packId"] = packObjectID
	}

	count, err := s.cards.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.Internal("failed to count published cards", err)
	}
	return count, nil
}

func newCardDocument(input CreateCardInput) (*models.Card, error) {
	packObjectID, err := primitive.ObjectIDFromHex(input.PackID)
	if err != nil {
		return nil, apperrors.Validation("invalid pack id")
	}

	now := time.Now()
	card := &models.Card{
		PackID:        packObjectID,
		Type:          input.Type,
		Text:          input.Text,
		Tags:          input.Tags,
		Difficulty:    "medium",
		AgeRating:     "all",
		IsActive:      true,
		Status:        models.StatusDraft,
		ContentSource: models.ContentSourceManual,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	if input.Difficulty != "" {
		card.Difficulty = input.Difficulty
	}
	if input.AgeRating != "" {
		card.AgeRating = input.AgeRating
	}
	if input.DiceCount != nil {
		card.DiceCount = *input.DiceCount
	}
	if input.IsActive != nil {
		card.IsActive = *input.IsActive
	}
	if input.Status != "" {
		card.Status = input.Status
	}
	return card, nil
}

func newImageCardDocument(input CreateImageCardInput) (*models.Card, error) {
	card, err := newCardDocument(CreateCardInput{
		PackID:     input.PackID,
		Type:       input.Type,
		Tags:       input.Tags,
		Difficulty: input.Difficulty,
		AgeRating:  input.AgeRating,
		Status:     input.Status,
	})
	if err != nil {
		return nil, err
	}

	// Authoritative overrides for image-sourced cards.
	card.ContentSource = models.ContentSourceImage
	card.Text = models.LocalizedText{}
	card.DiceCount = 0
	card.ImageURL = input.ImageURL
	card.ImageMeta = input.ImageMeta
	return card, nil
}

func buildCardFilter(filters CardFilters) (bson.M, error) {
	filter := bson.M{}
	if filters.PackID != "" {
		packObjectID, err := primitive.ObjectIDFromHex(filters.PackID)
		if err != nil {
			return nil, apperrors.Validation("invalid pack id")
		}
		filter["packId"] = packObjectID
	}
	if filters.Type != "" {
		filter["type"] = filters.Type
	}
	if filters.AgeRating != "" {
		filter["ageRating"] = filters.AgeRating
	}
	if filters.Status != "" {
		filter["status"] = filters.Status
	}
	if filters.IsActive != nil {
		filter["isActive"] = *filters.IsActive
	}
	return filter, nil
}

func buildCardUpdate(input UpdateCardInput) (bson.M, error) {
	update := bson.M{"updatedAt": time.Now()}
	if input.PackID != nil {
		packObjectID, err := primitive.ObjectIDFromHex(*input.PackID)
		if err != nil {
			return nil, apperrors.Validation("invalid pack id")
		}
		update["packId"] = packObjectID
	}
	if input.Type != nil {
		update["type"] = *input.Type
	}
	if input.Text != nil {
		update["text"] = input.Text
	}
	if input.Tags != nil {
		update["tags"] = input.Tags
	}
	if input.Difficulty != nil {
		update["difficulty"] = *input.Difficulty
	}
	if input.AgeRating != nil {
		update["ageRating"] = *input.AgeRating
	}
	if input.DiceCount != nil {
		update["diceCount"] = *input.DiceCount
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}
	if input.ImageURL != nil {
		update["imageUrl"] = *input.ImageURL
	}
	if input.ImageMeta != nil {
		update["imageMeta"] = input.ImageMeta
	}
	return update, nil
}
