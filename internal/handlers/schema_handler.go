package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaflow/internal/responses"
	"schemaflow/internal/services"
)

// SchemaHandler serves the machine-readable schema endpoints.
type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// GetDatabases handles GET /api/databases
func (h *SchemaHandler) GetDatabases(c *gin.Context) {
	databases, err := h.schemaService.ListDatabases(c.Request.Context())
	if err != nil {
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, databases)
}

// GetTableColumns handles GET /api/table/:database/:table
func (h *SchemaHandler) GetTableColumns(c *gin.Context) {
	database := c.Param("database")
	table := c.Param("table")

	if database == "" || table == "" {
		responses.Error(c, http.StatusBadRequest, "database and table parameters are required")
		return
	}

	columns, err := h.schemaService.TableColumns(c.Request.Context(), database, table)
	if err != nil {
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	// An unknown table serializes as null, a valid empty result.
	c.JSON(http.StatusOK, columns)
}

// GetTableRelationships handles GET /api/table/:database/:table/relationships
func (h *SchemaHandler) GetTableRelationships(c *gin.Context) {
	database := c.Param("database")
	table := c.Param("table")

	if database == "" || table == "" {
		responses.Error(c, http.StatusBadRequest, "database and table parameters are required")
		return
	}

	relationships, err := h.schemaService.TableRelationships(c.Request.Context(), database, table)
	if err != nil {
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, relationships)
}
