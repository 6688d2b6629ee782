package routes

import (
	"github.com/gin-gonic/gin"

	"schemaflow/internal/handlers"
)

type RenderRoutes struct {
	handler *handlers.RenderHandler
}

func NewRenderRoutes(handler *handlers.RenderHandler) *RenderRoutes {
	return &RenderRoutes{handler: handler}
}

func (r *RenderRoutes) RegisterRoutes(router *gin.RouterGroup) {
	render := router.Group("/render")
	{
		render.GET("/databases", r.handler.GetDatabases)
		render.GET("/schema/:database/:table", r.handler.GetTableSchema)
		render.GET("/database/:database/schema", r.handler.GetDatabaseSchema)
		render.GET("/database/:database/stats", r.handler.GetDatabaseStats)
	}
}
