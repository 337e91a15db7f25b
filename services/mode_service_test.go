package services

import (
	"testing"

	"challengecards/models"
)

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		"Friends":        "friends",
		"  couples  ":    "couples",
		"late-night-18+": "late-night-18+",
	}
	for input, expected := range cases {
		if got := normalizeSlug(input); got != expected {
			t.Errorf("normalizeSlug(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestBuildModeUpdateOnlyProvidedFields(t *testing.T) {
	slug := "  New-Slug "
	update := buildModeUpdate(UpdateModeInput{Slug: &slug})

	if update["slug"] != "new-slug" {
		t.Errorf("Expected normalized slug, got %v", update["slug"])
	}
	if _, ok := update["name"]; ok {
		t.Error("Expected unset fields to be absent from the update")
	}
	if len(update) != 2 {
		t.Errorf("Expected only slug and updatedAt, got %v", update)
	}
}

func TestBuildModeUpdateLocalizedMaps(t *testing.T) {
	name := models.LocalizedText{"en": "Friends", "th": "เพื่อน"}
	update := buildModeUpdate(UpdateModeInput{Name: name})

	got, ok := update["name"].(models.LocalizedText)
	if !ok {
		t.Fatalf("Expected localized map in update, got %T", update["name"])
	}
	if got["th"] != "เพื่อน" {
		t.Errorf("Expected localized value preserved, got %v", got)
	}
}

func TestBuildPackFilterOmitsUnsetFields(t *testing.T) {
	filter := buildPackFilter(PackFilters{})
	if len(filter) != 0 {
		t.Errorf("Expected empty filter, got %v", filter)
	}

	active := true
	filter = buildPackFilter(PackFilters{Mode: "friends", IsActive: &active})
	if filter["mode"] != "friends" {
		t.Errorf("Expected mode filter, got %v", filter["mode"])
	}
	if filter["isActive"] != true {
		t.Errorf("Expected isActive filter, got %v", filter["isActive"])
	}
	if len(filter) != 2 {
		t.Errorf("Expected 2 filter fields, got %v", filter)
	}
}
