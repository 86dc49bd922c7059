package api

import (
	"github.com/mogzealio/rest-api-v3-heroku/internal/middleware" // JWT guard

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RegisterRoutes attaches every endpoint to the router. Item routes are
// grouped behind the JWT middleware; everything else is public.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	// Auth routes
	r.POST("/register", RegisterHandler(db))    // Registration endpoint
	r.POST("/auth", AuthHandler(db, jwtSecret)) // Token issuance endpoint

	// Item routes (protected by JWT)
	itemGroup := r.Group("/item")
	itemGroup.Use(middleware.JWTAuthMiddleware(db, jwtSecret))
	itemGroup.GET("/:name", GetItemHandler(db))
	itemGroup.POST("/:name", CreateItemHandler(db))
	itemGroup.PUT("/:name", UpdateItemHandler(db))
	itemGroup.DELETE("/:name", DeleteItemHandler(db))
	r.GET("/items", ListItemsHandler(db))

	// Store routes (public)
	r.GET("/store/:name", GetStoreHandler(db))
	r.POST("/store/:name", CreateStoreHandler(db))
	r.DELETE("/store/:name", DeleteStoreHandler(db))
	r.GET("/stores", ListStoresHandler(db))
}
