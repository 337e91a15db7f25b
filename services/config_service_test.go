package services

import (
	"testing"

	"challengecards/models"
)

func TestDefaultConfigDoc(t *testing.T) {
	doc := defaultConfigDoc()

	if doc["key"] != configKey {
		t.Errorf("Expected singleton key %q, got %v", configKey, doc["key"])
	}
	if doc["contentVersion"] != int64(1) {
		t.Errorf("Expected contentVersion to start at 1, got %v", doc["contentVersion"])
	}
	if doc["adsEnabled"] != true {
		t.Errorf("Expected adsEnabled true, got %v", doc["adsEnabled"])
	}
	if doc["adRotationDuration"] != 5 {
		t.Errorf("Expected adRotationDuration 5, got %v", doc["adRotationDuration"])
	}
	if doc["minAppVersion"] != "1.0.0" {
		t.Errorf("Expected minAppVersion 1.0.0, got %v", doc["minAppVersion"])
	}

	languages, ok := doc["supportedLanguages"].([]models.SupportedLanguage)
	if !ok || len(languages) != 2 {
		t.Fatalf("Expected 2 default languages, got %v", doc["supportedLanguages"])
	}
	if languages[0].Code != "en" || languages[1].Code != "th" {
		t.Errorf("Expected default languages en, th; got %v", languages)
	}
}

func TestBuildConfigUpdateMergesProvidedFieldsOnly(t *testing.T) {
	enabled := false
	duration := 30
	update := buildConfigUpdate(UpdateConfigInput{
		AdsEnabled:         &enabled,
		AdRotationDuration: &duration,
	})

	if update["adsEnabled"] != false {
		t.Errorf("Expected adsEnabled false, got %v", update["adsEnabled"])
	}
	if update["adRotationDuration"] != 30 {
		t.Errorf("Expected adRotationDuration 30, got %v", update["adRotationDuration"])
	}
	if _, ok := update["minAppVersion"]; ok {
		t.Error("Expected untouched fields to be absent from the update")
	}
	if _, ok := update["updatedAt"]; !ok {
		t.Error("Expected updatedAt to be refreshed")
	}
	if len(update) != 3 {
		t.Errorf("Expected 3 update fields, got %v", update)
	}
}

func TestValidateSupportedLanguages(t *testing.T) {
	valid := []models.SupportedLanguage{
		{Code: "en", Label: "English"},
		{Code: "th", Label: "Thai"},
	}
	if err := validateSupportedLanguages(valid); err != nil {
		t.Errorf("Expected unique codes to validate, got %v", err)
	}

	duplicate := []models.SupportedLanguage{
		{Code: "en", Label: "English"},
		{Code: "en", Label: "English again"},
	}
	if err := validateSupportedLanguages(duplicate); err == nil {
		t.Error("Expected duplicate codes to be rejected")
	}

	empty := []models.SupportedLanguage{{Code: "", Label: "Nameless"}}
	if err := validateSupportedLanguages(empty); err == nil {
		t.Error("Expected empty code to be rejected")
	}

	if err := validateSupportedLanguages(nil); err != nil {
		t.Errorf("Expected nil list (field not provided) to validate, got %v", err)
	}
}
