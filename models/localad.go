package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalAd is a locally managed banner rotated on mobile clients. Order is a
// dense 0..n-1 sequence reassigned on reorder.
type LocalAd struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Label     string             `bson:"label" json:"label"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	LinkURL   string             `bson:"linkUrl" json:"linkUrl"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
