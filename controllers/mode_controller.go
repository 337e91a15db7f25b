package controllers

import (
	"context"
	"net/http"

	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type ModeController struct {
	modes *services.ModeService
}

// ListPublic returns active modes only.
func (mc *ModeController) ListPublic(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	modes, err := mc.modes.List(ctx, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, modes)
}

func (mc *ModeController) Create(c *gin.Context) {
	var input services.CreateModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	mode, err := mc.modes.Create(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mode)
}

func (mc *ModeController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	modes, err := mc.modes.List(ctx, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, modes)
}

func (mc *ModeController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	mode, err := mc.modes.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mode)
}

func (mc *ModeController) Update(c *gin.Context) {
	var input services.UpdateModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	mode, err := mc.modes.Update(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mode)
}

func (mc *ModeController) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := mc.modes.Remove(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
