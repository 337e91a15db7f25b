package controllers

import (
	"context"
	"net/http"

	"challengecards/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	admins *services.AdminService
}

// Login authenticates an admin account and returns a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ac.admins.Login(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Register creates a new admin or editor account. Admin role only.
func (ac *AuthController) Register(c *gin.Context) {
	var input services.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	admin, err := ac.admins.Create(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// ListUsers returns all console accounts without password hashes.
func (ac *AuthController) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	admins, err := ac.admins.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}
