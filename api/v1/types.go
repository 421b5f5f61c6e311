// Package v1 defines the request and response types of the dashboard API and
// the route table binding them to a handler implementation.
package v1

import (
	"github.com/Drishanv/ola-rides-insights/internal/models"
	"github.com/Drishanv/ola-rides-insights/internal/store"
)

// ConnectStoreRequest re-points the session at a new store file.
type ConnectStoreRequest struct {
	Path string `json:"path" binding:"required"`
}

// RunSQLRequest carries one ad-hoc statement from the SQL Runner tab.
type RunSQLRequest struct {
	SQL string `json:"sql" binding:"required"`
}

// ExploreRequest is the filter selection of one Explore interaction. Fields
// mirror models.FilterSelection; "All" (or empty) means no predicate.
type ExploreRequest struct {
	Status        string `json:"status"`
	VehicleType   string `json:"vehicleType"`
	PaymentMethod string `json:"paymentMethod"`
	DateFrom      string `json:"dateFrom"`
	DateTo        string `json:"dateTo"`
	Search        string `json:"search"`
}

func (r ExploreRequest) ToSelection() models.FilterSelection {
	return models.FilterSelection{
		Status:        r.Status,
		VehicleType:   r.VehicleType,
		PaymentMethod: r.PaymentMethod,
		DateFrom:      r.DateFrom,
		DateTo:        r.DateTo,
		Search:        r.Search,
	}
}

// ResultResponse is a materialized query result.
type ResultResponse struct {
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"rowCount"`
}

func NewResultResponse(t *models.ResultTable) ResultResponse {
	return ResultResponse{
		Columns:  t.Columns,
		Rows:     t.Rows,
		RowCount: t.RowCount(),
	}
}

// ExploreResponse is the filtered listing plus KPIs and the generated SQL.
type ExploreResponse struct {
	Result ResultResponse `json:"result"`
	KPIs   models.KPISet  `json:"kpis"`
	SQL    string         `json:"sql"`
}

// CatalogEntryResponse is one resolved predefined query.
type CatalogEntryResponse struct {
	Label    string `json:"label"`
	SQL      string `json:"sql"`
	FromView bool   `json:"fromView"`
}

func NewCatalogResponse(entries []store.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{Label: e.Label, SQL: e.SQL, FromView: e.FromView})
	}
	return out
}

// ReportResponse describes how the client should present the report.
type ReportResponse struct {
	Strategy   string   `json:"strategy"`
	Mode       string   `json:"mode"`
	Pages      int      `json:"pages"`
	PageTitles []string `json:"pageTitles"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
