package services

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Drishanv/ola-rides-insights/internal/models"
	"github.com/Drishanv/ola-rides-insights/internal/store"
)

// Explorer backs the Explore tab: filter options, the filtered listing and the
// headline KPIs, all computed fresh on every interaction.
type Explorer struct {
	session *Session
}

func NewExplorer(session *Session) *Explorer {
	return &Explorer{session: session}
}

// FilterOptions carries everything the filter sidebar needs: the distinct
// values per categorical filter (each column only when the schema has it) and
// the date bounds for the date picker.
type FilterOptions struct {
	Statuses       []string `json:"statuses"`
	VehicleTypes   []string `json:"vehicleTypes"`
	PaymentMethods []string `json:"paymentMethods"`
	DateMin        string   `json:"dateMin"`
	DateMax        string   `json:"dateMax"`
}

func (e *Explorer) Options(ctx context.Context) (*FilterOptions, error) {
	st, desc, err := e.session.Current()
	if err != nil {
		return nil, err
	}

	opts := &FilterOptions{}
	if desc.HasStatus {
		if opts.Statuses, err = st.Distinct().Distinct(ctx, desc.Name, models.ColumnBookingStatus); err != nil {
			return nil, err
		}
	}
	if desc.HasVehicle {
		if opts.VehicleTypes, err = st.Distinct().Distinct(ctx, desc.Name, models.ColumnVehicleType); err != nil {
			return nil, err
		}
	}
	if desc.HasPayment {
		if opts.PaymentMethods, err = st.Distinct().Distinct(ctx, desc.Name, models.ColumnPaymentMethod); err != nil {
			return nil, err
		}
	}
	if desc.HasDate {
		if opts.DateMin, opts.DateMax, err = e.dateBounds(ctx, st, desc.Name); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func (e *Explorer) dateBounds(ctx context.Context, st *store.Store, table string) (string, string, error) {
	query := fmt.Sprintf(
		"SELECT CAST(MIN(%[1]s) AS VARCHAR), CAST(MAX(%[1]s) AS VARCHAR) FROM %[2]s",
		models.ColumnDate, table)
	var min, max sql.NullString
	if err := st.DB().QueryRowContext(ctx, query).Scan(&min, &max); err != nil {
		return "", "", fmt.Errorf("date bounds: %w", err)
	}
	return min.String, max.String, nil
}

// ExploreResult is the filtered listing plus the KPIs computed over the same
// selection.
type ExploreResult struct {
	Table *models.ResultTable `json:"table"`
	KPIs  models.KPISet       `json:"kpis"`
	SQL   string              `json:"sql"`
}

// Explore builds the parameterized SELECT for the selection, runs it and
// computes the KPIs over the same predicates.
func (e *Explorer) Explore(ctx context.Context, sel models.FilterSelection) (*ExploreResult, error) {
	st, desc, err := e.session.Current()
	if err != nil {
		return nil, err
	}

	query, args, err := store.BuildFilterQuery(desc, sel)
	if err != nil {
		return nil, err
	}
	table, err := st.Executor().Execute(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	kpis, err := e.kpis(ctx, st, desc, sel)
	if err != nil {
		return nil, err
	}
	return &ExploreResult{Table: table, KPIs: kpis, SQL: query}, nil
}

// kpis aggregates over the current selection. Metrics whose columns the schema
// lacks stay at zero.
func (e *Explorer) kpis(ctx context.Context, st *store.Store, desc models.TableDescriptor, sel models.FilterSelection) (models.KPISet, error) {
	hasDistance := hasColumn(desc, "ride_distance")
	hasValue := hasColumn(desc, "booking_value")

	cols := []string{"COUNT(*) AS total_bookings"}
	if desc.HasStatus {
		cols = append(cols,
			"COUNT(CASE WHEN booking_status = 'Success' THEN 1 END) AS successful_rides")
	} else {
		cols = append(cols, "0 AS successful_rides")
	}
	if desc.HasStatus && hasValue {
		cols = append(cols,
			"CAST(COALESCE(SUM(CASE WHEN booking_status = 'Success' THEN booking_value END), 0) AS DOUBLE) AS total_success_value")
	} else {
		cols = append(cols, "CAST(0 AS DOUBLE) AS total_success_value")
	}
	if hasDistance {
		cols = append(cols,
			"CAST(COALESCE(AVG(ride_distance), 0) AS DOUBLE) AS avg_ride_distance")
	} else {
		cols = append(cols, "CAST(0 AS DOUBLE) AS avg_ride_distance")
	}

	builder := sq.Select(cols...).From(desc.Name)
	for _, opt := range store.OptionsFromSelection(sel, desc) {
		builder = opt(builder)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return models.KPISet{}, err
	}

	var kpis models.KPISet
	var total, success int64
	err = st.DB().QueryRowContext(ctx, query, args...).
		Scan(&total, &success, &kpis.TotalSuccessValue, &kpis.AvgRideDistance)
	if err != nil {
		return models.KPISet{}, fmt.Errorf("kpis: %w", err)
	}
	kpis.TotalBookings = int(total)
	kpis.SuccessfulRides = int(success)
	return kpis, nil
}

func hasColumn(desc models.TableDescriptor, name string) bool {
	for _, col := range desc.Columns {
		if col == name {
			return true
		}
	}
	return false
}
