package controllers

import (
	"context"
	"net/http"

	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type PackController struct {
	packs *services.PackService
}

// ListPublic returns active packs, optionally filtered by mode and ageRating.
func (pc *PackController) ListPublic(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	active := true
	filters := services.PackFilters{
		Mode:      c.Query("mode"),
		AgeRating: c.Query("ageRating"),
		IsActive:  &active,
	}

	packs, err := pc.packs.List(ctx, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packs)
}

func (pc *PackController) GetPublic(c *gin.Context) {
	pc.Get(c)
}

func (pc *PackController) Create(c *gin.Context) {
	var input services.CreatePackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pack, err := pc.packs.Create(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pack)
}

func (pc *PackController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	filters := services.PackFilters{
		Mode:      c.Query("mode"),
		AgeRating: c.Query("ageRating"),
		IsActive:  parseBoolQuery(c, "isActive"),
	}

	packs, err := pc.packs.List(ctx, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packs)
}

func (pc *PackController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pack, err := pc.packs.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pack)
}

func (pc *PackController) Update(c *gin.Context) {
	var input services.UpdatePackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pack, err := pc.packs.Update(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pack)
}

func (pc *PackController) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := pc.packs.Remove(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseBoolQuery returns nil when the query param is absent so the filter is
// omitted, not matched as false.
func parseBoolQuery(c *gin.Context, name string) *bool {
	value, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	parsed := value == "true"
	return &parsed
}
