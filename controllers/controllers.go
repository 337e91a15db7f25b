package controllers

import (
	"errors"
	"net/http"
	"time"

	"challengecards/config"
	apperrors "challengecards/pkg/errors"
	"challengecards/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const requestTimeout = 10 * time.Second

// Controllers bundles the HTTP handlers with their service handles.
type Controllers struct {
	Auth     *AuthController
	Modes    *ModeController
	Packs    *PackController
	Cards    *CardController
	LocalAds *LocalAdController
	Config   *ConfigController
	Publish  *PublishController
	Uploads  *UploadController
}

func New(database *mongo.Database, cfg *config.Config) *Controllers {
	adminService := services.NewAdminService(database, cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)
	cardService := services.NewCardService(database)
	configService := services.NewConfigService(database)

	return &Controllers{
		Auth:     &AuthController{admins: adminService},
		Modes:    &ModeController{modes: services.NewModeService(database)},
		Packs:    &PackController{packs: services.NewPackService(database)},
		Cards:    &CardController{cards: cardService},
		LocalAds: &LocalAdController{ads: services.NewLocalAdService(database)},
		Config:   &ConfigController{config: configService},
		Publish:  &PublishController{publish: services.NewPublishService(cardService, configService)},
		Uploads:  NewUploadController(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB),
	}
}

// AdminService exposes the account service for middleware wiring and seeding.
func (c *Controllers) AdminService() *services.AdminService {
	return c.Auth.admins
}

func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
}
