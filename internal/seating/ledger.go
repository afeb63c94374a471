package seating

import (
	"errors"
	"sort"

	"wedding-portal/internal/data/entity"
)

var (
	// ErrSeatTaken signals a seat already occupied by a different
	// guest. The ledger is untouched when this is returned.
	ErrSeatTaken = errors.New("seat already taken")

	// ErrSeatOutOfRange signals a seat number outside [1,maxSeats].
	ErrSeatOutOfRange = errors.New("seat number out of range")

	// ErrUnknownGuest signals an access code with no guest record.
	ErrUnknownGuest = errors.New("unknown guest code")
)

// AssignmentChange records one guest whose seat number changed.
type AssignmentChange struct {
	Code string
	Seat int
}

// Ledger couples the seat map with the guest records it was built
// from and keeps the two consistent: a seat is occupied iff exactly
// one guest's seat number equals it. Guests are shared with the
// caller; the ledger mutates their SeatNumber in place.
type Ledger struct {
	maxSeats int
	seats    SeatMap
	guests   map[string]*entity.Guest
}

// NewLedger materializes a ledger from the guest set. Guests with a
// seat number beyond maxSeats keep it on their record but hold no
// seat.
func NewLedger(maxSeats int, guests map[string]*entity.Guest) *Ledger {
	assignments := make(map[string]int, len(guests))
	for code, g := range guests {
		if g.SeatNumber != nil {
			assignments[code] = *g.SeatNumber
		}
	}
	return &Ledger{
		maxSeats: maxSeats,
		seats:    MaterializeSeats(maxSeats, assignments),
		guests:   guests,
	}
}

// Seats returns a copy of the current seat map.
func (l *Ledger) Seats() SeatMap {
	return l.seats.Clone()
}

// MaxSeats returns the capacity the ledger was built with.
func (l *Ledger) MaxSeats() int {
	return l.maxSeats
}

// CanAssign reports whether Assign(code, seat) would succeed, without
// mutating anything.
func (l *Ledger) CanAssign(code string, seatNumber int) error {
	if _, ok := l.guests[code]; !ok {
		return ErrUnknownGuest
	}
	if seatNumber < 1 || seatNumber > l.maxSeats {
		return ErrSeatOutOfRange
	}
	s := l.seats[seatNumber-1]
	if s.Occupied && s.GuestCode != code {
		return ErrSeatTaken
	}
	return nil
}

// Assign seats a guest. If the guest held a different seat it is
// freed in the same step, so callers only ever observe the old seat
// freed and the new one claimed together. On any error nothing is
// mutated. Assigning a guest their current seat is a no-op success.
func (l *Ledger) Assign(code string, seatNumber int) error {
	if err := l.CanAssign(code, seatNumber); err != nil {
		return err
	}
	g := l.guests[code]
	if g.SeatNumber != nil {
		if old := *g.SeatNumber; old >= 1 && old <= l.maxSeats && l.seats[old-1].GuestCode == code {
			l.seats[old-1].Occupied = false
			l.seats[old-1].GuestCode = ""
		}
	}
	l.seats[seatNumber-1].Occupied = true
	l.seats[seatNumber-1].GuestCode = code
	n := seatNumber
	g.SeatNumber = &n
	return nil
}

// Unassign frees whatever seat the guest holds. Unknown codes and
// seatless guests are no-ops.
func (l *Ledger) Unassign(code string) {
	g, ok := l.guests[code]
	if !ok || g.SeatNumber == nil {
		return
	}
	if old := *g.SeatNumber; old >= 1 && old <= l.maxSeats && l.seats[old-1].GuestCode == code {
		l.seats[old-1].Occupied = false
		l.seats[old-1].GuestCode = ""
	}
	g.SeatNumber = nil
}

// AutoAssignAll rebuilds the ledger and seats every guest: guests
// with an in-range seat keep it, everyone else takes the lowest free
// seat in ascending code order. Guests left over once capacity runs
// out stay unassigned. Running it twice with the same guest set and
// capacity yields the same map. Returns the guests whose seat number
// changed.
func (l *Ledger) AutoAssignAll() []AssignmentChange {
	l.seats = NewLedger(l.maxSeats, l.guests).seats

	codes := make([]string, 0, len(l.guests))
	for code := range l.guests {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var changes []AssignmentChange
	next := 1
	for _, code := range codes {
		g := l.guests[code]
		if g.SeatNumber != nil {
			n := *g.SeatNumber
			if n >= 1 && n <= l.maxSeats && l.seats[n-1].GuestCode == code {
				continue
			}
		}
		seat := l.lowestFreeSeat(next)
		if seat == 0 {
			continue
		}
		next = seat + 1
		l.seats[seat-1].Occupied = true
		l.seats[seat-1].GuestCode = code
		n := seat
		g.SeatNumber = &n
		changes = append(changes, AssignmentChange{Code: code, Seat: seat})
	}
	return changes
}

// LowestFreeSeat returns the first unoccupied seat number, or 0 when
// the ledger is full.
func (l *Ledger) LowestFreeSeat() int {
	return l.lowestFreeSeat(1)
}

func (l *Ledger) lowestFreeSeat(from int) int {
	if from < 1 {
		from = 1
	}
	for i := from - 1; i < len(l.seats); i++ {
		if !l.seats[i].Occupied {
			return i + 1
		}
	}
	return 0
}
