package payperiod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		year, month int
		start, end  string
	}{
		{2025, 1, "2025-01-01", "2025-01-31"},
		{2025, 2, "2025-02-01", "2025-02-28"},
		{2024, 2, "2024-02-01", "2024-02-29"}, // leap year
		{2025, 12, "2025-12-01", "2025-12-31"},
	}

	for _, c := range cases {
		start, end := MonthBounds(c.year, c.month)
		assert.Equal(t, c.start, start.Format("2006-01-02"))
		assert.Equal(t, c.end, end.Format("2006-01-02"))
		assert.Equal(t, time.UTC, start.Location())
	}
}
