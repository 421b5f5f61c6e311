package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/Drishanv/ola-rides-insights/api/v1"
)

// GetQueries returns the resolved predefined query catalog
// (GET /queries)
func (h *Handler) GetQueries(c *gin.Context) {
	entries, err := h.runner.Catalog(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCatalogResponse(entries))
}

// RunSQL executes one ad-hoc SELECT
// (POST /sql)
func (h *Handler) RunSQL(c *gin.Context) {
	var req v1.RunSQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "sql is required"})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), req.SQL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewResultResponse(result))
}

// ExportSQL downloads an ad-hoc query result as CSV or XLSX
// (POST /sql/export?format=csv|xlsx)
func (h *Handler) ExportSQL(c *gin.Context) {
	var req v1.RunSQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "sql is required"})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), req.SQL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeExport(c, result, "sql_results")
}
