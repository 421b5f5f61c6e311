package models

// Well-known booking columns. Capability flags are derived from these names so
// the UI can adapt to stores that carry only a subset.
const (
	ColumnDate          = "date"
	ColumnBookingStatus = "booking_status"
	ColumnVehicleType   = "vehicle_type"
	ColumnPaymentMethod = "payment_method"
	ColumnCustomerID    = "customer_id"
	ColumnPickup        = "pickup_location"
	ColumnDrop          = "drop_location"
)

// TableDescriptor describes one table of the store: its name, the ordered
// column list from a sample read, and the capability flags the filter UI keys
// off. It is computed once per connection and passed by value downstream.
type TableDescriptor struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`

	HasDate       bool `json:"hasDate"`
	HasStatus     bool `json:"hasStatus"`
	HasVehicle    bool `json:"hasVehicle"`
	HasPayment    bool `json:"hasPayment"`
	HasCustomerID bool `json:"hasCustomerId"`
	HasPickup     bool `json:"hasPickup"`
	HasDrop       bool `json:"hasDrop"`
}

// NewTableDescriptor derives the capability flags from the sampled column list.
func NewTableDescriptor(name string, columns []string) TableDescriptor {
	d := TableDescriptor{Name: name, Columns: columns}
	for _, col := range columns {
		switch col {
		case ColumnDate:
			d.HasDate = true
		case ColumnBookingStatus:
			d.HasStatus = true
		case ColumnVehicleType:
			d.HasVehicle = true
		case ColumnPaymentMethod:
			d.HasPayment = true
		case ColumnCustomerID:
			d.HasCustomerID = true
		case ColumnPickup:
			d.HasPickup = true
		case ColumnDrop:
			d.HasDrop = true
		}
	}
	return d
}
