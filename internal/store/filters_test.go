package store_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Drishanv/ola-rides-insights/internal/models"
	"github.com/Drishanv/ola-rides-insights/internal/store"
)

var _ = Describe("Filter query builder", func() {
	var desc models.TableDescriptor

	BeforeEach(func() {
		desc = models.NewTableDescriptor("bookings", []string{
			"date", "booking_status", "vehicle_type", "payment_method",
			"customer_id", "pickup_location", "drop_location",
		})
	})

	Context("categorical filters", func() {
		// Given all categorical filters at the "All" sentinel
		// When the query is built
		// Then no WHERE clause is emitted at all
		It("emits no predicates when everything is All", func() {
			sel := models.FilterSelection{
				Status:        models.FilterAll,
				VehicleType:   models.FilterAll,
				PaymentMethod: models.FilterAll,
			}

			query, args, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings"`))
			Expect(args).To(BeEmpty())
		})

		// Given a concrete status choice
		// When the query is built
		// Then exactly one bound equality predicate appears for that column
		It("binds one equality predicate per concrete choice", func() {
			sel := models.FilterSelection{
				Status:        "Success",
				VehicleType:   models.FilterAll,
				PaymentMethod: models.FilterAll,
			}

			query, args, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings" WHERE booking_status = ?`))
			Expect(args).To(Equal([]any{"Success"}))
		})

		It("joins multiple predicates with AND", func() {
			sel := models.FilterSelection{
				Status:        "Success",
				VehicleType:   "Mini",
				PaymentMethod: "UPI",
			}

			query, args, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(ContainSubstring("booking_status = ? AND vehicle_type = ? AND payment_method = ?"))
			Expect(args).To(Equal([]any{"Success", "Mini", "UPI"}))
		})

		// Given the same selection twice
		// When the query is rebuilt
		// Then statement and parameters are identical
		It("is idempotent across rebuilds", func() {
			sel := models.FilterSelection{Status: "Success", Search: "john"}

			q1, a1, err1 := store.BuildFilterQuery(desc, sel)
			q2, a2, err2 := store.BuildFilterQuery(desc, sel)

			Expect(err1).NotTo(HaveOccurred())
			Expect(err2).NotTo(HaveOccurred())
			Expect(q2).To(Equal(q1))
			Expect(a2).To(Equal(a1))
		})

		It("skips filters whose column is absent from the schema", func() {
			bare := models.NewTableDescriptor("bookings", []string{"booking_id"})
			sel := models.FilterSelection{Status: "Success", VehicleType: "Mini"}

			query, args, err := store.BuildFilterQuery(bare, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings"`))
			Expect(args).To(BeEmpty())
		})
	})

	Context("date range", func() {
		It("adds an inclusive BETWEEN when both endpoints are set", func() {
			sel := models.FilterSelection{DateFrom: "2024-01-01", DateTo: "2024-03-31"}

			query, args, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(ContainSubstring("date BETWEEN ? AND ?"))
			Expect(args).To(Equal([]any{"2024-01-01", "2024-03-31"}))
		})

		It("adds nothing when an endpoint is missing", func() {
			sel := models.FilterSelection{DateFrom: "2024-01-01"}

			query, args, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings"`))
			Expect(args).To(BeEmpty())
		})
	})

	Context("free-text search", func() {
		// Given a search term and the full schema
		// When the query is built
		// Then the disjunction covers all three search columns, with the
		// customer-id match case-sensitive and the location matches lowered
		It("searches all present columns with the documented case handling", func() {
			sel := models.FilterSelection{Search: "John"}

			query, args, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(ContainSubstring(
				"(CAST(customer_id AS TEXT) LIKE ? OR LOWER(pickup_location) LIKE ? OR LOWER(drop_location) LIKE ?)"))
			Expect(args).To(Equal([]any{"%John%", "%john%", "%john%"}))
		})

		// Given a table with only a pickup-location column
		// When searching for "john"
		// Then the predicate covers pickup-location only, lower-cased
		It("restricts the disjunction to columns the schema has", func() {
			pickupOnly := models.NewTableDescriptor("bookings", []string{"pickup_location"})
			sel := models.FilterSelection{Search: "john"}

			query, args, err := store.BuildFilterQuery(pickupOnly, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings" WHERE (LOWER(pickup_location) LIKE ?)`))
			Expect(args).To(Equal([]any{"%john%"}))
		})

		It("drops the term when no search column exists", func() {
			bare := models.NewTableDescriptor("bookings", []string{"booking_id"})
			sel := models.FilterSelection{Search: "john"}

			query, args, err := store.BuildFilterQuery(bare, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings"`))
			Expect(args).To(BeEmpty())
		})

		It("ignores whitespace-only terms", func() {
			sel := models.FilterSelection{Search: "   "}

			query, _, err := store.BuildFilterQuery(desc, sel)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(Equal(`SELECT * FROM "bookings"`))
		})
	})
})
