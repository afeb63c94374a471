// Package seating holds the seat ledger, the derived table partition
// and the assignment engine. Everything here is pure in-memory logic;
// persistence is the caller's concern.
package seating

import "sort"

// Seat is one numbered position in the ledger. Number is 1-based.
type Seat struct {
	Number    int    `json:"number"`
	Occupied  bool   `json:"occupied"`
	GuestCode string `json:"guest_code,omitempty"`
}

// SeatMap is the full ledger for the event, seats 1..len(m) at
// indices 0..len(m)-1.
type SeatMap []Seat

// MaterializeSeats builds a ledger of maxSeats free seats, then marks
// seats occupied per the guest->seat assignments. Assignments are
// applied in ascending code order so the outcome is deterministic;
// when two guests claim the same seat the later write wins silently.
// Seat numbers outside [1,maxSeats] are skipped: the guest keeps the
// dangling number on their record but holds no seat in the ledger.
func MaterializeSeats(maxSeats int, assignments map[string]int) SeatMap {
	if maxSeats < 0 {
		maxSeats = 0
	}
	m := make(SeatMap, maxSeats)
	for i := range m {
		m[i].Number = i + 1
	}

	codes := make([]string, 0, len(assignments))
	for code := range assignments {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		n := assignments[code]
		if n < 1 || n > maxSeats {
			continue
		}
		m[n-1].Occupied = true
		m[n-1].GuestCode = code
	}
	return m
}

// Collisions reports the seat numbers claimed by more than one guest
// in the given assignments, so callers can log the silent
// last-write-wins resolution.
func Collisions(assignments map[string]int) []int {
	claims := make(map[int]int)
	for _, n := range assignments {
		if n >= 1 {
			claims[n]++
		}
	}
	var out []int
	for n, c := range claims {
		if c > 1 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy of the ledger.
func (m SeatMap) Clone() SeatMap {
	out := make(SeatMap, len(m))
	copy(out, m)
	return out
}

// TableOf returns the table a seat belongs to: ceil(seat/k). Returns
// 0 for an unassigned or out-of-range seat, or a non-positive table
// size.
func TableOf(seatNumber, seatsPerTable int) int {
	if seatNumber < 1 || seatsPerTable < 1 {
		return 0
	}
	return (seatNumber + seatsPerTable - 1) / seatsPerTable
}

// SeatRange returns the inclusive seat interval [start,end] covered
// by a table. The last table of an event may extend past maxSeats;
// clipping is the caller's concern.
func SeatRange(tableNumber, seatsPerTable int) (start, end int) {
	if tableNumber < 1 || seatsPerTable < 1 {
		return 0, 0
	}
	start = (tableNumber-1)*seatsPerTable + 1
	end = tableNumber * seatsPerTable
	return start, end
}

// TotalTables returns ceil(maxSeats/seatsPerTable).
func TotalTables(maxSeats, seatsPerTable int) int {
	if maxSeats < 1 || seatsPerTable < 1 {
		return 0
	}
	return (maxSeats + seatsPerTable - 1) / seatsPerTable
}
