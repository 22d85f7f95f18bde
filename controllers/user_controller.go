package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
)

type UpdatePasswordInput struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

type UserController struct {
	users *services.UserService
	auth  *services.AuthService
}

func NewUserController(users *services.UserService, auth *services.AuthService) *UserController {
	return &UserController{users: users, auth: auth}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	username := c.MustGet("username").(string)

	user, err := ctl.users.Profile(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     user.Name,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (ctl *UserController) UpdatePassword(c *gin.Context) {
	username := c.MustGet("username").(string)

	var input UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, "Invalid input")
		return
	}

	if err := ctl.auth.ChangePassword(username, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.String(http.StatusOK, "Password updated")
}
