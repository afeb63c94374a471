package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeSeats(t *testing.T) {
	t.Run("empty assignments", func(t *testing.T) {
		m := MaterializeSeats(4, nil)
		require.Len(t, m, 4)
		for i, s := range m {
			assert.Equal(t, i+1, s.Number)
			assert.False(t, s.Occupied)
			assert.Empty(t, s.GuestCode)
		}
	})

	t.Run("marks assigned seats", func(t *testing.T) {
		m := MaterializeSeats(5, map[string]int{"AAAAA": 2, "BBBBB": 5})
		assert.True(t, m[1].Occupied)
		assert.Equal(t, "AAAAA", m[1].GuestCode)
		assert.True(t, m[4].Occupied)
		assert.Equal(t, "BBBBB", m[4].GuestCode)
		assert.False(t, m[0].Occupied)
	})

	t.Run("duplicate claim resolves last write wins", func(t *testing.T) {
		// Ascending code order: BBBBB is applied after AAAAA.
		m := MaterializeSeats(5, map[string]int{"AAAAA": 3, "BBBBB": 3})
		assert.Equal(t, "BBBBB", m[2].GuestCode)
		assert.Equal(t, []int{3}, Collisions(map[string]int{"AAAAA": 3, "BBBBB": 3}))
	})

	t.Run("out of range seat left dangling", func(t *testing.T) {
		m := MaterializeSeats(5, map[string]int{"AAAAA": 12})
		for _, s := range m {
			assert.False(t, s.Occupied)
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		assert.Empty(t, MaterializeSeats(0, map[string]int{"AAAAA": 1}))
	})
}

func TestTablePartition(t *testing.T) {
	// maxSeats=10, seatsPerTable=4 scenario from the seating plan.
	assert.Equal(t, 3, TotalTables(10, 4))
	assert.Equal(t, 3, TableOf(9, 4))

	start, end := SeatRange(3, 4)
	assert.Equal(t, 9, start)
	assert.Equal(t, 12, end)

	assert.Equal(t, 0, TableOf(0, 4))
	assert.Equal(t, 0, TableOf(5, 0))
	assert.Equal(t, 0, TotalTables(0, 4))
}

func TestTablePartitionInvariants(t *testing.T) {
	for _, k := range []int{1, 2, 4, 7, 10} {
		for _, maxSeats := range []int{1, 4, 10, 33, 100} {
			total := TotalTables(maxSeats, k)
			prev := 0
			for s := 1; s <= maxSeats; s++ {
				tbl := TableOf(s, k)
				assert.GreaterOrEqual(t, tbl, 1)
				assert.LessOrEqual(t, tbl, total)
				// monotone non-decreasing in s
				assert.GreaterOrEqual(t, tbl, prev)
				prev = tbl

				start, end := SeatRange(tbl, k)
				assert.GreaterOrEqual(t, s, start)
				assert.LessOrEqual(t, s, end)
			}
		}
	}
}
