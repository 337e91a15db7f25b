package services

import (
	"testing"

	"challengecards/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewCardDocumentDefaults(t *testing.T) {
	packID := primitive.NewObjectID()

	card, err := newCardDocument(CreateCardInput{
		PackID: packID.Hex(),
		Type:   models.CardTypeQuestion,
		Text:   models.LocalizedText{"en": "Who is most likely to...?"},
	})
	if err != nil {
		t.Fatalf("newCardDocument failed: %v", err)
	}

	if card.PackID != packID {
		t.Errorf("Expected packId %s, got %s", packID.Hex(), card.PackID.Hex())
	}
	if card.Difficulty != "medium" {
		t.Errorf("Expected default difficulty medium, got %q", card.Difficulty)
	}
	if card.AgeRating != "all" {
		t.Errorf("Expected default ageRating all, got %q", card.AgeRating)
	}
	if card.Status != models.StatusDraft {
		t.Errorf("Expected default status draft, got %q", card.Status)
	}
	if card.ContentSource != models.ContentSourceManual {
		t.Errorf("Expected default contentSource manual, got %q", card.ContentSource)
	}
	if !card.IsActive {
		t.Error("Expected new card to be active")
	}
	if card.Tags == nil {
		t.Error("Expected tags to be an empty slice, not nil")
	}
	if card.CreatedAt.IsZero() || card.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestNewCardDocumentInvalidPackID(t *testing.T) {
	_, err := newCardDocument(CreateCardInput{
		PackID: "not-a-hex-id",
		Type:   models.CardTypeDare,
		Text:   models.LocalizedText{"en": "do it"},
	})
	if err == nil {
		t.Fatal("Expected error for malformed pack id")
	}
}

func TestNewImageCardDocumentOverrides(t *testing.T) {
	packID := primitive.NewObjectID()
	dice := 5
	meta := &models.ImageMeta{Width: 800, Height: 600, Size: 12345, Mime: "image/png"}

	// Caller-supplied text, diceCount and contentSource must be ignored.
	card, err := newImageCardDocument(CreateImageCardInput{
		PackID:        packID.Hex(),
		Type:          models.CardTypeDare,
		ImageURL:      "/uploads/cards/card-abc.png",
		ImageMeta:     meta,
		Text:          models.LocalizedText{"en": "should be dropped"},
		DiceCount:     &dice,
		ContentSource: models.ContentSourceManual,
	})
	if err != nil {
		t.Fatalf("newImageCardDocument failed: %v", err)
	}

	if card.ContentSource != models.ContentSourceImage {
		t.Errorf("Expected contentSource image, got %q", card.ContentSource)
	}
	if len(card.Text) != 0 {
		t.Errorf("Expected empty text map, got %v", card.Text)
	}
	if card.Text == nil {
		t.Error("Expected empty text map, not nil")
	}
	if card.DiceCount != 0 {
		t.Errorf("Expected diceCount 0, got %d", card.DiceCount)
	}
	if card.ImageURL != "/uploads/cards/card-abc.png" {
		t.Errorf("Unexpected imageUrl %q", card.ImageURL)
	}
	if card.ImageMeta != meta {
		t.Error("Expected imageMeta to be written verbatim")
	}
}

func TestBuildCardFilterOmitsUnsetFields(t *testing.T) {
	filter, err := buildCardFilter(CardFilters{})
	if err != nil {
		t.Fatalf("buildCardFilter failed: %v", err)
	}
	if len(filter) != 0 {
		t.Errorf("Expected empty filter, got %v", filter)
	}

	active := false
	packID := primitive.NewObjectID()
	filter, err = buildCardFilter(CardFilters{
		PackID:   packID.Hex(),
		Status:   models.StatusPublished,
		IsActive: &active,
	})
	if err != nil {
		t.Fatalf("buildCardFilter failed: %v", err)
	}
	if len(filter) != 3 {
		t.Errorf("Expected 3 filter fields, got %v", filter)
	}
	if filter["packId"] != packID {
		t.Errorf("Expected packId to be an ObjectID, got %v", filter["packId"])
	}
	if filter["isActive"] != false {
		t.Errorf("Expected isActive false to be included, got %v", filter["isActive"])
	}
}

func TestBuildCardFilterRejectsBadPackID(t *testing.T) {
	if _, err := buildCardFilter(CardFilters{PackID: "nope"}); err == nil {
		t.Fatal("Expected error for malformed pack id")
	}
}

func TestBuildCardUpdateOnlyProvidedFields(t *testing.T) {
	status := models.StatusReview
	update, err := buildCardUpdate(UpdateCardInput{Status: &status})
	if err != nil {
		t.Fatalf("buildCardUpdate failed: %v", err)
	}

	if update["status"] != models.StatusReview {
		t.Errorf("Expected status review, got %v", update["status"])
	}
	if _, ok := update["updatedAt"]; !ok {
		t.Error("Expected updatedAt to be refreshed")
	}
	if len(update) != 2 {
		t.Errorf("Expected only status and updatedAt, got %v", update)
	}
}
