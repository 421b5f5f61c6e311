package store_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Drishanv/ola-rides-insights/internal/store"
	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

var _ = Describe("NewDB", func() {
	It("opens an in-memory store for tests", func() {
		db, err := store.NewDB(":memory:")

		Expect(err).NotTo(HaveOccurred())
		Expect(db.Ping()).To(Succeed())
		Expect(db.Close()).To(Succeed())
	})

	// Given a path that does not resolve to a file
	// When the store is opened
	// Then StoreNotFoundError is raised without creating anything
	It("refuses to create a missing store file", func() {
		missing := filepath.Join(GinkgoT().TempDir(), "nope.duckdb")

		_, err := store.NewDB(missing)

		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsStoreNotFoundError(err)).To(BeTrue())
		Expect(missing).NotTo(BeAnExistingFile())
	})
})
