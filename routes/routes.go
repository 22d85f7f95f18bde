package routes

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nutritrack/config"
	"nutritrack/controllers"
	"nutritrack/middlewares"
	"nutritrack/services"
	"nutritrack/stores"
	"nutritrack/utils"
)

// SetupRouter wires the stores, services and controllers and mounts
// the HTTP surface.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userStore := stores.NewUserStore(db)
	foodStore := stores.NewFoodStore(db)

	tokens := utils.NewTokenService(cfg.JWTSecret)
	authSvc := services.NewAuthService(userStore, tokens)
	userSvc := services.NewUserService(userStore)
	foodSvc := services.NewFoodService(foodStore)
	nutritionSvc := services.NewNutritionService(userStore)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc, authSvc)
	foodCtl := controllers.NewFoodController(foodSvc, userSvc)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc)

	r := gin.Default()
	if cfg.SentryDSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// Public auth routes
	r.POST("/signup", authCtl.Signup)
	r.POST("/login", authCtl.Login)

	// Protected user routes
	user := r.Group("/")
	user.Use(middlewares.AuthMiddleware(tokens))
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/updatePassword", userCtl.UpdatePassword)
		user.POST("/addFood", foodCtl.AddFood)
		user.GET("/foods", foodCtl.ListFoods)
		user.POST("/addNutrition", nutritionCtl.AddNutrition)
		user.GET("/getNutrition", nutritionCtl.GetNutrition)
	}

	return r
}
