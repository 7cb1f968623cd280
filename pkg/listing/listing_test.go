package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type saleRow struct {
	Name   string
	Phone  string
	Amount float64
	Status string
	Date   time.Time
}

func sampleRows(n int) []saleRow {
	rows := make([]saleRow, 0, n)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		rows = append(rows, saleRow{
			Name:   "Customer",
			Amount: float64(i),
			Status: "open",
			Date:   base.AddDate(0, 0, i),
		})
	}
	return rows
}

func TestFilterConjunctive(t *testing.T) {
	rows := []saleRow{
		{Name: "Anita Rao", Phone: "9890011223", Amount: 12000, Status: "paid"},
		{Name: "Bhaskar", Phone: "9890099887", Amount: 4500, Status: "open"},
		{Name: "Anil Kumar", Phone: "9777711223", Amount: 90000, Status: "paid"},
	}

	min := 5000.0
	got := Filter(rows,
		Substring("ani", func(r saleRow) string { return r.Name }),
		NumericRange(func(r saleRow) float64 { return r.Amount }, &min, nil),
		Equals(func(r saleRow) string { return r.Status }, "paid"),
	)

	assert.Len(t, got, 2)
	assert.Equal(t, "Anita Rao", got[0].Name)
	assert.Equal(t, "Anil Kumar", got[1].Name)
}

func TestFilterInactivePredicatesPassAll(t *testing.T) {
	rows := sampleRows(5)
	got := Filter(rows,
		Substring("", func(r saleRow) string { return r.Name }),
		Equals(func(r saleRow) string { return r.Status }, ""),
		DateRange(func(r saleRow) time.Time { return r.Date }, nil, nil),
	)
	assert.Len(t, got, 5)
}

func TestFilterSubstringMatchesAnyField(t *testing.T) {
	rows := []saleRow{
		{Name: "Meena", Phone: "9845000000"},
		{Name: "Ravi", Phone: "8000098450"},
		{Name: "Suresh", Phone: "7000000000"},
	}
	got := Filter(rows, Substring("9845",
		func(r saleRow) string { return r.Name },
		func(r saleRow) string { return r.Phone },
	))
	assert.Len(t, got, 2)
}

func TestFilterDateRange(t *testing.T) {
	rows := sampleRows(10)
	from := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	got := Filter(rows, DateRange(func(r saleRow) time.Time { return r.Date }, &from, &to))
	assert.Len(t, got, 4)
}

func TestFilterIdempotentAndNonMutating(t *testing.T) {
	rows := sampleRows(30)
	snapshot := make([]saleRow, len(rows))
	copy(snapshot, rows)

	min := 10.0
	pred := NumericRange(func(r saleRow) float64 { return r.Amount }, &min, nil)

	first := Filter(rows, pred)
	second := Filter(rows, pred)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, rows)
}

func TestPaginateFullAndPartialPages(t *testing.T) {
	rows := sampleRows(45)

	page1 := Paginate(rows, 1, DefaultPageSize)
	assert.Len(t, page1.Rows, 20)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 45, page1.TotalRows)
	assert.Equal(t, 0.0, page1.Rows[0].Amount)
	assert.Equal(t, 19.0, page1.Rows[19].Amount)

	page3 := Paginate(rows, 3, DefaultPageSize)
	assert.Len(t, page3.Rows, 5)
	assert.Equal(t, 40.0, page3.Rows[0].Amount)
	assert.Equal(t, 44.0, page3.Rows[4].Amount)
}

func TestPaginatePastEnd(t *testing.T) {
	rows := sampleRows(45)
	page := Paginate(rows, 9, DefaultPageSize)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPaginateDefaultsOnBadInput(t *testing.T) {
	rows := sampleRows(25)
	page := Paginate(rows, 0, 0)
	assert.Equal(t, 1, page.Number)
	assert.Len(t, page.Rows, DefaultPageSize)
	assert.Equal(t, 2, page.TotalPages)
}
