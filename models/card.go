package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card types
const (
	CardTypeQuestion   = "question"
	CardTypeDare       = "dare"
	CardTypeVote       = "vote"
	CardTypePunishment = "punishment"
	CardTypeBonus      = "bonus"
	CardTypeMinigame   = "minigame"
)

// Card statuses. Any transition between them is permitted.
const (
	StatusDraft     = "draft"
	StatusReview    = "review"
	StatusPublished = "published"
)

// Content sources
const (
	ContentSourceManual = "manual"
	ContentSourceImage  = "image"
)

// ImageMeta describes an uploaded card image, written verbatim from the
// upload response.
type ImageMeta struct {
	Width  int    `bson:"width" json:"width"`
	Height int    `bson:"height" json:"height"`
	Size   int64  `bson:"size" json:"size"`
	Mime   string `bson:"mime" json:"mime"`
}

// Card is one challenge unit shown to players. Image-sourced cards always
// carry an empty text map and zero diceCount.
type Card struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PackID        primitive.ObjectID `bson:"packId" json:"packId"`
	Type          string             `bson:"type" json:"type"`
	Text          LocalizedText      `bson:"text" json:"text"`
	Tags          []string           `bson:"tags" json:"tags"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"` // easy, medium, hard
	AgeRating     string             `bson:"ageRating" json:"ageRating"`
	DiceCount     int                `bson:"diceCount" json:"diceCount"` // 0-6
	IsActive      bool               `bson:"isActive" json:"isActive"`
	Status        string             `bson:"status" json:"status"`
	ContentSource string             `bson:"contentSource" json:"contentSource"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImageMeta     *ImageMeta         `bson:"imageMeta,omitempty" json:"imageMeta,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
