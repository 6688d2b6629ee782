package routes

import (
	"github.com/gin-gonic/gin"

	"schemaflow/internal/handlers"
)

type SchemaRoutes struct {
	handler *handlers.SchemaHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/databases", r.handler.GetDatabases)

	table := router.Group("/table/:database/:table")
	{
		table.GET("", r.handler.GetTableColumns)
		table.GET("/relationships", r.handler.GetTableRelationships)
	}
}
