package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Drishanv/ola-rides-insights/internal/store"
)

var _ = Describe("Catalog", func() {
	var (
		ctx context.Context
		s   *store.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = newSeededStore(ctx)
	})

	AfterEach(func() {
		s.Close()
	})

	It("resolves all ten labels in fixed order", func() {
		entries, err := s.Catalog().Resolve(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(10))
		Expect(entries[0].Label).To(Equal("Successful bookings"))
		Expect(entries[9].Label).To(Equal("Incomplete rides with reason"))
	})

	// Given no precomputed views
	// When the catalog resolves
	// Then every entry carries its inline fallback query
	It("falls back to inline queries when no view exists", func() {
		entries, err := s.Catalog().Resolve(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(entries[0].FromView).To(BeFalse())
		Expect(entries[0].SQL).To(Equal(
			"SELECT * FROM bookings WHERE booking_status = 'Success'"))
	})

	// Given a view with the expected name
	// When the catalog resolves
	// Then the view shadows the fallback for its label only
	It("prefers a precomputed view when present", func() {
		_, err := s.DB().ExecContext(ctx,
			"CREATE VIEW successful_bookings AS SELECT * FROM bookings WHERE booking_status = 'Success'")
		Expect(err).NotTo(HaveOccurred())

		entries, err := s.Catalog().Resolve(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(entries[0].FromView).To(BeTrue())
		Expect(entries[0].SQL).To(Equal("SELECT * FROM successful_bookings"))
		// Other labels are unaffected.
		Expect(entries[1].FromView).To(BeFalse())
	})

	It("returns the same result shape through both paths", func() {
		fallback, err := s.Catalog().Resolve(ctx)
		Expect(err).NotTo(HaveOccurred())
		viaFallback, err := s.Executor().Execute(ctx, fallback[0].SQL)
		Expect(err).NotTo(HaveOccurred())

		_, err = s.DB().ExecContext(ctx,
			"CREATE VIEW successful_bookings AS SELECT * FROM bookings WHERE booking_status = 'Success'")
		Expect(err).NotTo(HaveOccurred())

		shadowed, err := s.Catalog().Resolve(ctx)
		Expect(err).NotTo(HaveOccurred())
		viaView, err := s.Executor().Execute(ctx, shadowed[0].SQL)
		Expect(err).NotTo(HaveOccurred())

		Expect(viaView.Columns).To(Equal(viaFallback.Columns))
		Expect(viaView.RowCount()).To(Equal(viaFallback.RowCount()))
	})
})
