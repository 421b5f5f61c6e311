package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Drishanv/ola-rides-insights/internal/store"
)

var _ = Describe("DistinctCache", func() {
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

	It("returns sorted deduplicated non-null values", func() {
		_, err := s.DB().ExecContext(ctx,
			"INSERT INTO bookings (booking_status) VALUES (NULL)")
		Expect(err).NotTo(HaveOccurred())

		values, err := s.Distinct().Distinct(ctx, "bookings", "booking_status")

		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]string{
			"Canceled_Rides_by_Customer",
			"Canceled_Rides_by_Driver",
			"Success",
		}))
	})

	It("coerces non-text columns to strings", func() {
		values, err := s.Distinct().Distinct(ctx, "bookings", "customer_id")

		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]string{"101", "102", "103", "104"}))
	})

	// Given a cached column
	// When the underlying data changes behind the same path
	// Then the cache keeps serving the old values; only a new path refreshes
	It("serves stale values until the key changes", func() {
		first, err := s.Distinct().Distinct(ctx, "bookings", "vehicle_type")
		Expect(err).NotTo(HaveOccurred())

		_, err = s.DB().ExecContext(ctx,
			"INSERT INTO bookings (vehicle_type) VALUES ('eBike')")
		Expect(err).NotTo(HaveOccurred())

		second, err := s.Distinct().Distinct(ctx, "bookings", "vehicle_type")
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))

		// A fresh cache over the same handle observes the new value.
		fresh := store.NewDistinctCache(s.DB(), "other-key")
		third, err := fresh.Distinct(ctx, "bookings", "vehicle_type")
		Expect(err).NotTo(HaveOccurred())
		Expect(third).To(ContainElement("eBike"))
	})

	It("errors on a missing column", func() {
		_, err := s.Distinct().Distinct(ctx, "bookings", "no_such_column")
		Expect(err).To(HaveOccurred())
	})
})
