package controllers

import (
	"context"
	"net/http"

	"challengecards/models"
	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type CardController struct {
	cards *services.CardService
}

// ListPublic returns playable cards. With a packId it serves the play query
// (published + active, age-gated); without one it lists all published active
// cards.
func (cc *CardController) ListPublic(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	packID := c.Query("packId")
	ageRating := c.Query("ageRating")

	if packID != "" {
		cards, err := cc.cards.ListForPlay(ctx, packID, ageRating)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cards)
		return
	}

	active := true
	cards, err := cc.cards.List(ctx, services.CardFilters{
		AgeRating: ageRating,
		Status:    models.StatusPublished,
		IsActive:  &active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (cc *CardController) GetPublic(c *gin.Context) {
	cc.Get(c)
}

func (cc *CardController) Create(c *gin.Context) {
	var input services.CreateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := cc.cards.Create(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (cc *CardController) CreateFromImage(c *gin.Context) {
	var input services.CreateImageCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := cc.cards.CreateFromImage(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (cc *CardController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	filters := services.CardFilters{
		PackID:    c.Query("packId"),
		Type:      c.Query("type"),
		AgeRating: c.Query("ageRating"),
		Status:    c.Query("status"),
		IsActive:  parseBoolQuery(c, "isActive"),
	}

	cards, err := cc.cards.List(ctx, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (cc *CardController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := cc.cards.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (cc *CardController) Update(c *gin.Context) {
	var input services.UpdateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := cc.cards.Update(ctx, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (cc *CardController) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := cc.cards.Remove(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
