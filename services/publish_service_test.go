package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"challengecards/models"
)

type fakeCardPublisher struct {
	bulkCalls  []string
	bulkStatus string
	bulkErr    error
	countCalls []string
	count      int64
	countErr   error
}

func (f *fakeCardPublisher) BulkSetStatus(ctx context.Context, packID, status string) error {
	f.bulkCalls = append(f.bulkCalls, packID)
	f.bulkStatus = status
	return f.bulkErr
}

func (f *fakeCardPublisher) CountPublished(ctx context.Context, packID string) (int64, error) {
	f.countCalls = append(f.countCalls, packID)
	return f.count, f.countErr
}

type fakeVersionBumper struct {
	calls   int
	version int64
	err     error
}

func (f *fakeVersionBumper) BumpVersion(ctx context.Context) (*models.AppConfig, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.version++
	return &models.AppConfig{ContentVersion: f.version, UpdatedAt: time.Now()}, nil
}

func TestPublishWithPack(t *testing.T) {
	cards := &fakeCardPublisher{count: 7}
	config := &fakeVersionBumper{version: 3}
	svc := &PublishService{cards: cards, config: config}

	result, err := svc.Publish(context.Background(), "pack1")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if len(cards.bulkCalls) != 1 || cards.bulkCalls[0] != "pack1" {
		t.Errorf("Expected one bulk write for pack1, got %v", cards.bulkCalls)
	}
	if cards.bulkStatus != models.StatusPublished {
		t.Errorf("Expected bulk status %q, got %q", models.StatusPublished, cards.bulkStatus)
	}
	if config.calls != 1 {
		t.Errorf("Expected one version bump, got %d", config.calls)
	}
	if result.ContentVersion != 4 {
		t.Errorf("Expected content version 4, got %d", result.ContentVersion)
	}
	if result.PublishedCards != 7 {
		t.Errorf("Expected 7 published cards, got %d", result.PublishedCards)
	}
	if result.PackID != "pack1" {
		t.Errorf("Expected packId pack1, got %q", result.PackID)
	}
	if len(cards.countCalls) != 1 || cards.countCalls[0] != "pack1" {
		t.Errorf("Expected count scoped to pack1, got %v", cards.countCalls)
	}
}

func TestPublishWithoutPackSkipsBulkWrite(t *testing.T) {
	cards := &fakeCardPublisher{count: 12}
	config := &fakeVersionBumper{version: 1}
	svc := &PublishService{cards: cards, config: config}

	result, err := svc.Publish(context.Background(), "")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if len(cards.bulkCalls) != 0 {
		t.Errorf("Expected no bulk write, got %v", cards.bulkCalls)
	}
	if config.calls != 1 {
		t.Errorf("Expected version bump even without packId, got %d calls", config.calls)
	}
	if result.ContentVersion != 2 {
		t.Errorf("Expected content version 2, got %d", result.ContentVersion)
	}
	if result.PublishedCards != 12 {
		t.Errorf("Expected published count across all packs, got %d", result.PublishedCards)
	}
	if result.PackID != "" {
		t.Errorf("Expected empty packId, got %q", result.PackID)
	}
	if len(cards.countCalls) != 1 || cards.countCalls[0] != "" {
		t.Errorf("Expected unscoped count, got %v", cards.countCalls)
	}
}

func TestPublishBulkFailureStopsBeforeBump(t *testing.T) {
	cards := &fakeCardPublisher{bulkErr: errors.New("write failed")}
	config := &fakeVersionBumper{}
	svc := &PublishService{cards: cards, config: config}

	_, err := svc.Publish(context.Background(), "pack1")
	if err == nil {
		t.Fatal("Expected error when bulk write fails")
	}
	if config.calls != 0 {
		t.Errorf("Expected no version bump after bulk failure, got %d calls", config.calls)
	}
}

func TestPublishBumpFailurePropagates(t *testing.T) {
	cards := &fakeCardPublisher{}
	config := &fakeVersionBumper{err: errors.New("bump failed")}
	svc := &PublishService{cards: cards, config: config}

	_, err := svc.Publish(context.Background(), "")
	if err == nil {
		t.Fatal("Expected error when version bump fails")
	}
	if len(cards.countCalls) != 0 {
		t.Errorf("Expected no tally after bump failure, got %v", cards.countCalls)
	}
}
