package controllers

import (
	"context"
	"net/http"

	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type ConfigController struct {
	config *services.ConfigService
}

func (cc *ConfigController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	cfg, err := cc.config.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (cc *ConfigController) Update(c *gin.Context) {
	var input services.UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	cfg, err := cc.config.Update(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
