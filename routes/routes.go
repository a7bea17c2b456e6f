package routes

import (
	"gofood/configs"
	"gofood/controllers"
	"gofood/middlewares"
	"gofood/repository"
	"gofood/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL))
	foodCtrl := controllers.NewFoodController(services.NewFoodService(foodRepo))
	favCtrl := controllers.NewFavoriteController(services.NewFavoriteService(favRepo, foodRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, foodRepo))

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalogue (public)
	r.GET("/foods", foodCtrl.List)
	r.GET("/foods/:id", foodCtrl.Detail)

	// Favorites (user)
	fav := r.Group("/favorites", auth)
	{
		fav.GET("", favCtrl.List)
		fav.GET("/:id", favCtrl.Detail)
		fav.POST("", favCtrl.Create)
		fav.DELETE("/:id", favCtrl.Delete)
	}

	// Orders (user)
	o := r.Group("/orders", auth)
	{
		o.GET("", orderCtrl.ListForMe)
		o.GET("/:code", orderCtrl.Detail)
		o.POST("", orderCtrl.Create)
	}
}
