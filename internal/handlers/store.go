package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/Drishanv/ola-rides-insights/api/v1"
)

// ConnectStore re-points the session at a new store path
// (POST /store/connect)
func (h *Handler) ConnectStore(c *gin.Context) {
	var req v1.ConnectStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "path is required"})
		return
	}
	if err := h.session.Connect(c.Request.Context(), req.Path); err != nil {
		h.log.Warnw("store connect failed", "path", req.Path, "error", err)
		h.writeError(c, err)
		return
	}

	schema, err := h.session.Schema()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schema)
}

// GetSchema returns the session's view of the store schema
// (GET /schema)
func (h *Handler) GetSchema(c *gin.Context) {
	schema, err := h.session.Schema()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schema)
}
