package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
)

type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, "Invalid input")
		return
	}

	token, user, err := ctl.auth.Register(input.Name, input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.String(http.StatusConflict, "Username already exists.")
			return
		}
		log.Println(err)
		c.String(http.StatusNotFound, "Our server has some issue")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"username": user.Username,
		"id":       user.ID,
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusUnauthorized, "Wrong credentials")
		return
	}

	token, err := ctl.auth.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrWrongCredentials) {
			c.String(http.StatusUnauthorized, "Wrong credentials")
			return
		}
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.Header("auth-token", token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
