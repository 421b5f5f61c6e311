package services_test

import (
	"bytes"
	"encoding/csv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/Drishanv/ola-rides-insights/internal/models"
	"github.com/Drishanv/ola-rides-insights/internal/services"
)

var _ = Describe("Exporter", func() {
	var (
		exporter *services.Exporter
		table    *models.ResultTable
	)

	BeforeEach(func() {
		exporter = services.NewExporter()
		table = &models.ResultTable{
			Columns: []string{"booking_id", "date", "booking_value", "note"},
			Rows: [][]any{
				{"CNR100001", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 320.0, "a,b"},
				{"CNR100002", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 180.0, nil},
			},
		}
	})

	Context("CSV", func() {
		// Given any result table
		// When it is exported and re-parsed
		// Then row count and column names survive the round trip
		It("round-trips rows and columns", func() {
			data, err := exporter.CSV(table)
			Expect(err).NotTo(HaveOccurred())

			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(records[0]).To(Equal(table.Columns))
			Expect(records).To(HaveLen(1 + table.RowCount()))
		})

		It("quotes embedded separators and renders NULL as empty", func() {
			data, err := exporter.CSV(table)
			Expect(err).NotTo(HaveOccurred())

			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(records[1][3]).To(Equal("a,b"))
			Expect(records[2][3]).To(Equal(""))
		})

		It("formats dates without a time component", func() {
			data, err := exporter.CSV(table)
			Expect(err).NotTo(HaveOccurred())

			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(records[1][1]).To(Equal("2024-01-05"))
		})

		It("handles an empty result", func() {
			empty := &models.ResultTable{Columns: []string{"n"}, Rows: [][]any{}}

			data, err := exporter.CSV(empty)
			Expect(err).NotTo(HaveOccurred())

			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})
	})

	Context("XLSX", func() {
		It("produces a readable workbook with a header row", func() {
			data, err := exporter.XLSX(table)
			Expect(err).NotTo(HaveOccurred())

			f, err := excelize.OpenReader(bytes.NewReader(data))
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Sheet1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1 + table.RowCount()))
			Expect(rows[0]).To(Equal(table.Columns))
		})
	})
})
