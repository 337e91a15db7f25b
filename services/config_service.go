package services

import (
	"context"
	"fmt"
	"time"

	"challengecards/models"
	apperrors "challengecards/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// configKey is the fixed key of the singleton app_configs document.
const configKey = "app"

// ConfigService manages the singleton AppConfig document.
type ConfigService struct {
	configs *mongo.Collection
}

func NewConfigService(database *mongo.Database) *ConfigService {
	return &ConfigService{configs: database.Collection("app_configs")}
}

type UpdateConfigInput struct {
	AdsEnabled          *bool                      `json:"adsEnabled"`
	AdmobAppID          *string                    `json:"admobAppId"`
	AdmobBannerID       *string                    `json:"admobBannerId"`
	AdmobInterstitialID *string                    `json:"admobInterstitialId"`
	AdRotationDuration  *int                       `json:"adRotationDuration" binding:"omitempty,min=1,max=60"`
	MinAppVersion       *string                    `json:"minAppVersion"`
	SupportedLanguages  []models.SupportedLanguage `json:"supportedLanguages"`
	APIBaseURL          *string                    `json:"apiBaseUrl"`
}

// Get returns the singleton config, creating it with defaults on first
// access. The upsert keyed by the fixed configKey (unique-indexed) keeps
// concurrent cold starts from producing duplicate documents.
func (s *ConfigService) Get(ctx context.Context) (*models.AppConfig, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var cfg models.AppConfig
	err := s.configs.FindOneAndUpdate(
		ctx,
		bson.M{"key": configKey},
		bson.M{"$setOnInsert": defaultConfigDoc()},
		opts,
	).Decode(&cfg)
	if err != nil {
		return nil, apperrors.Internal("failed to load app config", err)
	}
	return &cfg, nil
}

// Update merges the provided fields into the singleton; untouched fields keep
// their values. A missing document is created from defaults first.
func (s *ConfigService) Update(ctx context.Context, input UpdateConfigInput) (*models.AppConfig, error) {
	if err := validateSupportedLanguages(input.SupportedLanguages); err != nil {
		return nil, err
	}

	// Make sure the singleton exists so the $set merges into defaults.
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	update := buildConfigUpdate(input)

	var cfg models.AppConfig
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.configs.FindOneAndUpdate(ctx, bson.M{"key": configKey}, bson.M{"$set": update}, opts).Decode(&cfg)
	if err != nil {
		return nil, apperrors.Internal("failed to update app config", err)
	}
	return &cfg, nil
}

// BumpVersion atomically increments contentVersion by 1 and returns the
// updated document. A single $inc at the storage layer, never a
// read-modify-write, so concurrent publishes cannot lose an increment.
func (s *ConfigService) BumpVersion(ctx context.Context) (*models.AppConfig, error) {
	// Make sure the singleton exists before incrementing.
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	update := bson.M{
		"$inc": bson.M{"contentVersion": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	var cfg models.AppConfig
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.configs.FindOneAndUpdate(ctx, bson.M{"key": configKey}, update, opts).Decode(&cfg)
	if err != nil {
		return nil, apperrors.Internal("failed to bump content version", err)
	}
	return &cfg, nil
}

func defaultConfigDoc() bson.M {
	now := time.Now()
	return bson.M{
		"key":                 configKey,
		"adsEnabled":          true,
		"admobAppId":          "",
		"admobBannerId":       "",
		"admobInterstitialId": "",
		"adRotationDuration":  5,
		"contentVersion":      int64(1),
		"minAppVersion":       "1.0.0",
		"supportedLanguages": []models.SupportedLanguage{
			{Code: "en", Label: "English"},
			{Code: "th", Label: "Thai (ภาษาไทย)"},
		},
		"apiBaseUrl": "",
		"createdAt":  now,
		"updatedAt":  now,
	}
}

func buildConfigUpdate(input UpdateConfigInput) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if input.AdsEnabled != nil {
		update["adsEnabled"] = *input.AdsEnabled
	}
	if input.AdmobAppID != nil {
		update["admobAppId"] = *input.AdmobAppID
	}
	if input.AdmobBannerID != nil {
		update["admobBannerId"] = *input.AdmobBannerID
	}
	if input.AdmobInterstitialID != nil {
		update["admobInterstitialId"] = *input.AdmobInterstitialID
	}
	if input.AdRotationDuration != nil {
		update["adRotationDuration"] = *input.AdRotationDuration
	}
	if input.MinAppVersion != nil {
		update["minAppVersion"] = *input.MinAppVersion
	}
	if input.SupportedLanguages != nil {
		update["supportedLanguages"] = input.SupportedLanguages
	}
	if input.APIBaseURL != nil {
		update["apiBaseUrl"] = *input.APIBaseURL
	}
	return update
}

func validateSupportedLanguages(languages []models.SupportedLanguage) error {
	seen := map[string]bool{}
	for _, lang := range languages {
		if lang.Code == "" {
			return apperrors.Validation("language code must not be empty")
		}
		if seen[lang.Code] {
			return apperrors.Validation(fmt.Sprintf("duplicate language code %q", lang.Code))
		}
		seen[lang.Code] = true
	}
	return nil
}
