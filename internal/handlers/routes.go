package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the request gate middlewares and every endpoint
// onto the engine.
func RegisterRoutes(engine *gin.Engine, songs *SongHandler, health *HealthHandler) {
	engine.Use(CORSHeaders(), RequireJSONAccept(), RequireJSONBody())

	if health != nil {
		engine.GET("/health", health.Check)
	}

	collection := engine.Group("/songs")
	{
		collection.GET("", songs.List)
		collection.POST("", songs.Create)
		collection.POST("/seed", songs.Seed)
		collection.OPTIONS("", songs.CollectionOptions)

		collection.GET("/:id", songs.Get)
		collection.PUT("/:id", songs.Replace)
		collection.PATCH("/:id", songs.Patch)
		collection.DELETE("/:id", songs.Delete)
		collection.OPTIONS("/:id", songs.ItemOptions)
	}
}
