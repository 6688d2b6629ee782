package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"schemaflow/internal/responses"
	"schemaflow/internal/services"
)

// RenderHandler serves the diagram and statistics endpoints.
type RenderHandler struct {
	renderService *services.RenderService
	statsService  *services.StatsService
}

func NewRenderHandler(renderService *services.RenderService, statsService *services.StatsService) *RenderHandler {
	return &RenderHandler{
		renderService: renderService,
		statsService:  statsService,
	}
}

// GetDatabases handles GET /api/render/databases
func (h *RenderHandler) GetDatabases(c *gin.Context) {
	databases, err := h.renderService.DatabaseList(c.Request.Context())
	if err != nil {
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, databases)
}

// GetTableSchema handles GET /api/render/schema/:database/:table
func (h *RenderHandler) GetTableSchema(c *gin.Context) {
	database := c.Param("database")
	table := c.Param("table")

	if database == "" || table == "" {
		responses.Error(c, http.StatusBadRequest, "database and table parameters are required")
		return
	}

	schema, err := h.renderService.TableDiagram(c.Request.Context(), database, table)
	if err != nil {
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schema": schema})
}

// GetDatabaseSchema handles GET /api/render/database/:database/schema
func (h *RenderHandler) GetDatabaseSchema(c *gin.Context) {
	database := c.Param("database")

	if database == "" {
		responses.Error(c, http.StatusBadRequest, "database parameter is required")
		return
	}

	filters := services.RenderFilters{
		Engines:  c.QueryArray("engines"),
		Metadata: parseBoolDefault(c.Query("metadata"), true),
	}
	if filters.Engines == nil {
		filters.Engines = []string{}
	}

	schema, err := h.renderService.DatabaseDiagram(c.Request.Context(), database, filters)
	if err != nil {
		if errors.Is(err, services.ErrDatabaseNotFound) {
			responses.ErrorFrom(c, http.StatusNotFound, err)
			return
		}
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"database": database,
		"schema":   schema,
		"filters":  filters,
	})
}

// GetDatabaseStats handles GET /api/render/database/:database/stats
func (h *RenderHandler) GetDatabaseStats(c *gin.Context) {
	database := c.Param("database")

	if database == "" {
		responses.Error(c, http.StatusBadRequest, "database parameter is required")
		return
	}

	stats, err := h.statsService.DatabaseStats(c.Request.Context(), database)
	if err != nil {
		responses.ErrorFrom(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseBoolDefault coerces a query value to bool, keeping rendering
// permissive: unparsable input falls back to the default.
func parseBoolDefault(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
