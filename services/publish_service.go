package services

import (
	"context"

	"challengecards/models"
)

// cardPublisher is the slice of CardService the publish workflow needs.
type cardPublisher interface {
	BulkSetStatus(ctx context.Context, packID, status string) error
	CountPublished(ctx context.Context, packID string) (int64, error)
}

// versionBumper is the slice of ConfigService the publish workflow needs.
type versionBumper interface {
	BumpVersion(ctx context.Context) (*models.AppConfig, error)
}

// PublishResult is returned to the admin console after a publish.
type PublishResult struct {
	ContentVersion int64  `json:"contentVersion"`
	PublishedCards int64  `json:"publishedCards"`
	PackID         string `json:"packId,omitempty"`
}

// PublishService composes the bulk card status write with the content
// version bump. The two writes hit different collections and are not wrapped
// in a transaction: if the bulk write succeeds and the bump fails, cards stay
// published while clients keep their cached version until the next publish.
type PublishService struct {
	cards  cardPublisher
	config versionBumper
}

func NewPublishService(cards *CardService, config *ConfigService) *PublishService {
	return &PublishService{cards: cards, config: config}
}

// Publish marks every card in packID as published (no bulk write happens when
// packID is empty), bumps the content version, and tallies the published
// cards in scope.
func (s *PublishService) Publish(ctx context.Context, packID string) (*PublishResult, error) {
	if packID != "" {
		if err := s.cards.BulkSetStatus(ctx, packID, models.StatusPublished); err != nil {
			return nil, err
		}
	}

	cfg, err := s.config.BumpVersion(ctx)
	if err != nil {
		return nil, err
	}

	publishedCards, err := s.cards.CountPublished(ctx, packID)
	if err != nil {
		return nil, err
	}

	return &PublishResult{
		ContentVersion: cfg.ContentVersion,
		PublishedCards: publishedCards,
		PackID:         packID,
	}, nil
}
