package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Drishanv/ola-rides-insights/internal/models"
)

// ListOption mutates the SELECT being assembled for the Explore tab. Options
// that decide they have nothing to add return the builder unchanged, so the
// zero-predicate case emits no WHERE clause at all.
type ListOption func(sq.SelectBuilder) sq.SelectBuilder

// ByStatus adds an equality predicate on booking_status unless the choice is
// the "All" sentinel or empty.
func ByStatus(status string) ListOption {
	return byEquality(models.ColumnBookingStatus, status)
}

// ByVehicleType adds an equality predicate on vehicle_type.
func ByVehicleType(vehicle string) ListOption {
	return byEquality(models.ColumnVehicleType, vehicle)
}

// ByPaymentMethod adds an equality predicate on payment_method.
func ByPaymentMethod(payment string) ListOption {
	return byEquality(models.ColumnPaymentMethod, payment)
}

func byEquality(column, value string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if value == "" || value == models.FilterAll {
			return b
		}
		return b.Where(sq.Eq{column: value})
	}
}

// ByDateRange adds an inclusive BETWEEN over the date column. A predicate is
// emitted only when both endpoints are supplied.
func ByDateRange(from, to string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if from == "" || to == "" {
			return b
		}
		return b.Where(sq.Expr(models.ColumnDate+" BETWEEN ? AND ?", from, to))
	}
}

// BySearch adds a disjunction over whichever search columns the descriptor
// carries: customer id as a straight LIKE on the text cast, pickup and drop
// locations as lower-cased substring matches. The customer-id match stays
// case-sensitive while the location matches are not; that asymmetry is an
// observed property of the source dataset tooling and is kept as-is. When none
// of the three columns exist the term is dropped without a predicate.
func BySearch(term string, desc models.TableDescriptor) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		term = strings.TrimSpace(term)
		if term == "" {
			return b
		}

		var preds sq.Or
		if desc.HasCustomerID {
			preds = append(preds, sq.Expr(
				"CAST("+models.ColumnCustomerID+" AS TEXT) LIKE ?", "%"+term+"%"))
		}
		if desc.HasPickup {
			preds = append(preds, sq.Expr(
				"LOWER("+models.ColumnPickup+") LIKE ?", "%"+strings.ToLower(term)+"%"))
		}
		if desc.HasDrop {
			preds = append(preds, sq.Expr(
				"LOWER("+models.ColumnDrop+") LIKE ?", "%"+strings.ToLower(term)+"%"))
		}
		if len(preds) == 0 {
			return b
		}
		return b.Where(preds)
	}
}

// OptionsFromSelection maps one round of filter state onto builder options,
// honoring the descriptor: a filter whose column is absent from the schema is
// skipped entirely.
func OptionsFromSelection(sel models.FilterSelection, desc models.TableDescriptor) []ListOption {
	var opts []ListOption
	if desc.HasStatus {
		opts = append(opts, ByStatus(sel.Status))
	}
	if desc.HasVehicle {
		opts = append(opts, ByVehicleType(sel.VehicleType))
	}
	if desc.HasPayment {
		opts = append(opts, ByPaymentMethod(sel.PaymentMethod))
	}
	if desc.HasDate {
		opts = append(opts, ByDateRange(sel.DateFrom, sel.DateTo))
	}
	opts = append(opts, BySearch(sel.Search, desc))
	return opts
}

// BuildFilterQuery assembles the parameterized SELECT for the current filter
// selection. Predicates are joined with AND; values are always bound
// parameters, never spliced into the statement text.
func BuildFilterQuery(desc models.TableDescriptor, sel models.FilterSelection) (string, []any, error) {
	builder := sq.Select("*").From(quoteIdent(desc.Name))
	for _, opt := range OptionsFromSelection(sel, desc) {
		builder = opt(builder)
	}
	return builder.ToSql()
}
