package controllers

import (
	"context"
	"net/http"

	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type LocalAdController struct {
	ads *services.LocalAdService
}

type ReorderRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// ListPublic returns active ads in rotation order.
func (ac *LocalAdController) ListPublic(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	ads, err := ac.ads.ListActive(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (ac *LocalAdController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	ads, err := ac.ads.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (ac *LocalAdController) Create(c *gin.Context) {
	var input services.CreateLocalAdInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	ad, err := ac.ads.Create(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (ac *LocalAdController) Update(c *gin.Context) {
	var input services.UpdateLocalAdInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	ad, err := ac.ads.Update(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (ac *LocalAdController) Toggle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	ad, err := ac.ads.Toggle(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (ac *LocalAdController) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ac.ads.Remove(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ac *LocalAdController) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ac.ads.Reorder(ctx, req.IDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ads reordered"})
}
