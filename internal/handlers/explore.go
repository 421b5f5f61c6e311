package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/Drishanv/ola-rides-insights/api/v1"
	"github.com/Drishanv/ola-rides-insights/internal/models"
)

// GetExploreOptions returns the filter dropdown values and date bounds
// (GET /explore/options)
func (h *Handler) GetExploreOptions(c *gin.Context) {
	opts, err := h.explorer.Options(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Explore runs the filtered listing for one filter selection
// (POST /explore)
func (h *Handler) Explore(c *gin.Context) {
	var req v1.ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.explorer.Explore(c.Request.Context(), req.ToSelection())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.ExploreResponse{
		Result: v1.NewResultResponse(result.Table),
		KPIs:   result.KPIs,
		SQL:    result.SQL,
	})
}

// ExportExplore downloads the filtered listing as CSV or XLSX
// (POST /explore/export?format=csv|xlsx)
func (h *Handler) ExportExplore(c *gin.Context) {
	var req v1.ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.explorer.Explore(c.Request.Context(), req.ToSelection())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeExport(c, result.Table, "ola_filtered")
}

// writeExport serializes a result table in the requested format and sends it
// as an attachment.
func (h *Handler) writeExport(c *gin.Context, table *models.ResultTable, baseName string) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.exporter.CSV(table)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+baseName+`.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx":
		data, err := h.exporter.XLSX(table)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+baseName+`.xlsx"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "unknown export format"})
	}
}
