package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportedLanguage is one entry of the ordered language list served to
// mobile clients.
type SupportedLanguage struct {
	Code  string `bson:"code" json:"code"`
	Label string `bson:"label" json:"label"`
}

// AppConfig is the singleton global configuration document. Exactly one
// instance exists, keyed by a fixed value and lazily created on first access.
// ContentVersion starts at 1 and is only ever incremented; mobile clients
// compare it against their cached value to decide whether to re-fetch.
type AppConfig struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Key                 string              `bson:"key" json:"-"`
	AdsEnabled          bool                `bson:"adsEnabled" json:"adsEnabled"`
	AdmobAppID          string              `bson:"admobAppId" json:"admobAppId"`
	AdmobBannerID       string              `bson:"admobBannerId" json:"admobBannerId"`
	AdmobInterstitialID string              `bson:"admobInterstitialId" json:"admobInterstitialId"`
	AdRotationDuration  int                 `bson:"adRotationDuration" json:"adRotationDuration"` // seconds, 1-60
	ContentVersion      int64               `bson:"contentVersion" json:"contentVersion"`
	MinAppVersion       string              `bson:"minAppVersion" json:"minAppVersion"`
	SupportedLanguages  []SupportedLanguage `bson:"supportedLanguages" json:"supportedLanguages"`
	APIBaseURL          string              `bson:"apiBaseUrl" json:"apiBaseUrl"` // overrides the bootstrap API base URL on clients
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}
