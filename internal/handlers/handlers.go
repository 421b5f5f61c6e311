package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/Drishanv/ola-rides-insights/api/v1"
	"github.com/Drishanv/ola-rides-insights/internal/report"
	"github.com/Drishanv/ola-rides-insights/internal/services"
	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

// Handler implements v1.ServerInterface over the service layer.
type Handler struct {
	session  *services.Session
	explorer *services.Explorer
	runner   *services.Runner
	exporter *services.Exporter

	reportChain *report.Chain
	reportDoc   report.Document

	log *zap.SugaredLogger
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(
	session *services.Session,
	explorer *services.Explorer,
	runner *services.Runner,
	exporter *services.Exporter,
	reportChain *report.Chain,
	reportDoc report.Document,
) *Handler {
	return &Handler{
		session:     session,
		explorer:    explorer,
		runner:      runner,
		exporter:    exporter,
		reportChain: reportChain,
		reportDoc:   reportDoc,
		log:         zap.S().Named("handlers"),
	}
}

// writeError maps the typed service errors onto HTTP statuses. Engine errors
// go out verbatim; everything stays scoped so the next interaction works.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case srvErrors.IsStoreNotFoundError(err),
		srvErrors.IsSessionNotConnectedError(err):
		status = http.StatusServiceUnavailable
	case srvErrors.IsStatementRejectedError(err):
		status = http.StatusBadRequest
	case srvErrors.IsExecutionError(err):
		status = http.StatusUnprocessableEntity
	case srvErrors.IsReportUnavailableError(err):
		status = http.StatusNotFound
	}
	c.JSON(status, v1.ErrorResponse{Error: err.Error()})
}
