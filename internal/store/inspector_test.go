package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Drishanv/ola-rides-insights/internal/store"
)

var _ = Describe("Inspector", func() {
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

	It("lists base tables sorted ascending", func() {
		_, err := s.DB().ExecContext(ctx, "CREATE TABLE zones (name VARCHAR)")
		Expect(err).NotTo(HaveOccurred())
		_, err = s.DB().ExecContext(ctx, "CREATE TABLE areas (name VARCHAR)")
		Expect(err).NotTo(HaveOccurred())

		tables, err := s.Inspector().ListTables(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(tables).To(Equal([]string{"areas", "bookings", "zones"}))
	})

	It("lists views separately from tables, sorted ascending", func() {
		_, err := s.DB().ExecContext(ctx,
			"CREATE VIEW successful_bookings AS SELECT * FROM bookings WHERE booking_status = 'Success'")
		Expect(err).NotTo(HaveOccurred())

		views, err := s.Inspector().ListViews(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(views).To(Equal([]string{"successful_bookings"}))

		tables, err := s.Inspector().ListTables(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(tables).NotTo(ContainElement("successful_bookings"))
	})

	It("derives capability flags from a sample read", func() {
		desc, err := s.Inspector().Describe(ctx, "bookings", 5)

		Expect(err).NotTo(HaveOccurred())
		Expect(desc.Name).To(Equal("bookings"))
		Expect(desc.Columns).To(HaveLen(12))
		Expect(desc.HasDate).To(BeTrue())
		Expect(desc.HasStatus).To(BeTrue())
		Expect(desc.HasVehicle).To(BeTrue())
		Expect(desc.HasPayment).To(BeTrue())
		Expect(desc.HasCustomerID).To(BeTrue())
		Expect(desc.HasPickup).To(BeTrue())
		Expect(desc.HasDrop).To(BeTrue())
	})

	It("clears the flags for columns the table lacks", func() {
		_, err := s.DB().ExecContext(ctx,
			"CREATE TABLE minimal (booking_id VARCHAR, pickup_location VARCHAR)")
		Expect(err).NotTo(HaveOccurred())

		desc, err := s.Inspector().Describe(ctx, "minimal", 5)

		Expect(err).NotTo(HaveOccurred())
		Expect(desc.HasPickup).To(BeTrue())
		Expect(desc.HasDate).To(BeFalse())
		Expect(desc.HasStatus).To(BeFalse())
		Expect(desc.HasCustomerID).To(BeFalse())
	})

	It("errors on a missing table", func() {
		_, err := s.Inspector().Describe(ctx, "nope", 5)
		Expect(err).To(HaveOccurred())
	})
})
