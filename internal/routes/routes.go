package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaflow/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, schemaHandler *handlers.SchemaHandler, renderHandler *handlers.RenderHandler) {
	api := router.Group("/api")

	schemaRoutes := NewSchemaRoutes(schemaHandler)
	schemaRoutes.RegisterRoutes(api)

	renderRoutes := NewRenderRoutes(renderHandler)
	renderRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
