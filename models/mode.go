package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameMode is a top-level game variant (e.g. "Friends", "Couples") that packs
// belong to. Packs reference a mode by slug; deleting a mode leaves those
// references dangling on purpose.
type GameMode struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug        string             `bson:"slug" json:"slug"`
	Name        LocalizedText      `bson:"name" json:"name"`
	Description LocalizedText      `bson:"description" json:"description"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	SortOrder   int                `bson:"sortOrder" json:"sortOrder"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
