package controllers

import (
	"context"
	"io"
	"net/http"

	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type PublishController struct {
	publish *services.PublishService
}

type PublishRequest struct {
	PackID string `json:"packId"`
}

// Publish marks a pack's cards (or nothing, when packId is omitted) as
// published and bumps the content version.
func (pc *PublishController) Publish(c *gin.Context) {
	// An empty body publishes nothing but still bumps the version.
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := pc.publish.Publish(ctx, req.PackID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
