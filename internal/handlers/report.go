package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/Drishanv/ola-rides-insights/api/v1"
	"github.com/Drishanv/ola-rides-insights/internal/report"
	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

// GetReport resolves the renderer chain and tells the client how to present
// the report
// (GET /report)
func (h *Handler) GetReport(c *gin.Context) {
	rendition, err := h.reportChain.Resolve(c.Request.Context(), h.reportDoc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.ReportResponse{
		Strategy:   rendition.Strategy,
		Mode:       string(rendition.Mode),
		Pages:      rendition.Pages,
		PageTitles: h.reportDoc.PageTitles,
	})
}

// GetReportFile serves the raw report document, inline for the embed strategy
// and as an attachment otherwise
// (GET /report/file?download=1)
func (h *Handler) GetReportFile(c *gin.Context) {
	disposition := "inline"
	if c.Query("download") != "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition",
		disposition+`; filename="`+filepath.Base(h.reportDoc.Path)+`"`)
	c.File(h.reportDoc.Path)
}

// GetReportPage rasterizes one report page to PNG
// (GET /report/pages/:page)
func (h *Handler) GetReportPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "invalid page number"})
		return
	}

	raster := h.reportChain.Raster()
	if raster == nil {
		h.writeError(c, srvErrors.NewReportUnavailableError(h.reportDoc.Path))
		return
	}
	data, failure := raster.RenderPage(c.Request.Context(), h.reportDoc, page)
	if failure != nil {
		if failure.Reason == report.ReasonPageOutOfRange {
			c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: failure.Error()})
			return
		}
		h.log.Infow("page rasterization failed",
			"page", page, "reason", failure.Reason, "error", failure.Err)
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: failure.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
