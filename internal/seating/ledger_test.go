package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-portal/internal/data/entity"
)

func guestSet(seats map[string]*int) map[string]*entity.Guest {
	guests := make(map[string]*entity.Guest, len(seats))
	for code, seat := range seats {
		guests[code] = &entity.Guest{Code: code, SeatNumber: seat, Category: entity.CategoryVVIP}
	}
	return guests
}

func seatPtr(n int) *int { return &n }

func TestLedgerAssign(t *testing.T) {
	t.Run("assign free seat", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": nil})
		l := NewLedger(10, guests)

		require.NoError(t, l.Assign("AAAAA", 4))
		assert.Equal(t, 4, *guests["AAAAA"].SeatNumber)
		assert.Equal(t, "AAAAA", l.Seats()[3].GuestCode)
	})

	t.Run("idempotent on same seat", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": nil})
		l := NewLedger(10, guests)

		require.NoError(t, l.Assign("AAAAA", 4))
		require.NoError(t, l.Assign("AAAAA", 4))
		assert.Equal(t, 4, *guests["AAAAA"].SeatNumber)
	})

	t.Run("conflict leaves state unchanged", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": nil, "BBBBB": nil})
		l := NewLedger(10, guests)

		require.NoError(t, l.Assign("AAAAA", 4))
		err := l.Assign("BBBBB", 4)
		assert.ErrorIs(t, err, ErrSeatTaken)
		assert.Equal(t, "AAAAA", l.Seats()[3].GuestCode)
		assert.Nil(t, guests["BBBBB"].SeatNumber)
	})

	t.Run("reassignment frees the old seat atomically", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": seatPtr(2)})
		l := NewLedger(10, guests)

		require.NoError(t, l.Assign("AAAAA", 7))
		seats := l.Seats()
		assert.False(t, seats[1].Occupied)
		assert.Equal(t, "AAAAA", seats[6].GuestCode)
		assert.Equal(t, 7, *guests["AAAAA"].SeatNumber)
	})

	t.Run("unknown guest", func(t *testing.T) {
		l := NewLedger(10, guestSet(nil))
		assert.ErrorIs(t, l.Assign("ZZZZZ", 1), ErrUnknownGuest)
	})

	t.Run("out of range", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": nil})
		l := NewLedger(10, guests)
		assert.ErrorIs(t, l.Assign("AAAAA", 11), ErrSeatOutOfRange)
		assert.ErrorIs(t, l.Assign("AAAAA", 0), ErrSeatOutOfRange)
		assert.Nil(t, guests["AAAAA"].SeatNumber)
	})
}

func TestLedgerUnassign(t *testing.T) {
	guests := guestSet(map[string]*int{"AAAAA": seatPtr(3)})
	l := NewLedger(10, guests)

	l.Unassign("AAAAA")
	assert.Nil(t, guests["AAAAA"].SeatNumber)
	assert.False(t, l.Seats()[2].Occupied)

	// unknown code is a no-op
	l.Unassign("ZZZZZ")
}

func TestAutoAssignAll(t *testing.T) {
	t.Run("seated guests are stable, others get lowest free seat", func(t *testing.T) {
		guests := guestSet(map[string]*int{"G1AAA": seatPtr(5), "G2AAA": nil})
		l := NewLedger(10, guests)

		changes := l.AutoAssignAll()
		assert.Equal(t, 5, *guests["G1AAA"].SeatNumber)
		assert.Equal(t, 1, *guests["G2AAA"].SeatNumber)
		assert.Equal(t, []AssignmentChange{{Code: "G2AAA", Seat: 1}}, changes)
	})

	t.Run("idempotent", func(t *testing.T) {
		guests := guestSet(map[string]*int{
			"G1AAA": seatPtr(5),
			"G2AAA": nil,
			"G3AAA": seatPtr(99), // out of range, gets reseated
		})
		l := NewLedger(10, guests)

		l.AutoAssignAll()
		first := l.Seats()

		changes := l.AutoAssignAll()
		assert.Empty(t, changes)
		assert.Equal(t, first, l.Seats())
	})

	t.Run("capacity exhausted leaves overflow unassigned", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": nil, "BBBBB": nil, "CCCCC": nil})
		l := NewLedger(2, guests)

		l.AutoAssignAll()
		seated := 0
		for _, g := range guests {
			if g.SeatNumber != nil {
				seated++
			}
		}
		assert.Equal(t, 2, seated)
		assert.Nil(t, guests["CCCCC"].SeatNumber)
	})

	t.Run("repairs a duplicate-claim loser", func(t *testing.T) {
		guests := guestSet(map[string]*int{"AAAAA": seatPtr(3), "BBBBB": seatPtr(3)})
		l := NewLedger(10, guests)

		// BBBBB won materialization; AAAAA holds a dangling 3.
		l.AutoAssignAll()
		assert.Equal(t, 3, *guests["BBBBB"].SeatNumber)
		assert.Equal(t, 1, *guests["AAAAA"].SeatNumber)
	})
}

func TestLowestFreeSeat(t *testing.T) {
	guests := guestSet(map[string]*int{"AAAAA": seatPtr(1), "BBBBB": seatPtr(3)})
	l := NewLedger(4, guests)

	// gap-aware: seat 2 comes before appending after the maximum
	assert.Equal(t, 2, l.LowestFreeSeat())

	require.NoError(t, l.Assign("AAAAA", 2))
	assert.Equal(t, 1, l.LowestFreeSeat())

	full := NewLedger(1, guestSet(map[string]*int{"AAAAA": seatPtr(1)}))
	assert.Equal(t, 0, full.LowestFreeSeat())
}
