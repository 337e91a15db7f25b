package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pack is a named collection of cards sharing a game mode and age rating.
type Pack struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug          string             `bson:"slug" json:"slug"`
	Title         LocalizedText      `bson:"title" json:"title"`
	Description   LocalizedText      `bson:"description" json:"description"`
	Mode          string             `bson:"mode" json:"mode"` // GameMode slug, not enforced
	AgeRating     string             `bson:"ageRating" json:"ageRating"` // "all" or "18+"
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CoverImageURL string             `bson:"coverImageUrl" json:"coverImageUrl"`
	SortOrder     int                `bson:"sortOrder" json:"sortOrder"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
