package usecase

import (
	"context"

	"wedding-portal/internal/dto/response"
	"wedding-portal/internal/seating"
	"wedding-portal/internal/state"
	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

type SeatingService interface {
	SeatMap(ctx context.Context) *response.SeatMapResponse
	MySeat(ctx context.Context, code string) (*response.MySeatResponse, error)
	Assign(ctx context.Context, code string, seatNumber int) error
	AutoAssign(ctx context.Context) (*response.AutoAssignResponse, error)
	GenerateCodes(ctx context.Context, count int) (*response.GeneratedCodesResponse, error)
}

type seatingService struct {
	state *state.Manager
	log   *zap.Logger
}

func NewSeatingService(m *state.Manager, log *zap.Logger) SeatingService {
	return &seatingService{
		state: m,
		log:   log.With(zap.String("service", "seating")),
	}
}

// SeatMap renders the ledger grouped into tables, with table names and
// notes from settings and guest names resolved per occupied seat.
func (s *seatingService) SeatMap(ctx context.Context) *response.SeatMapResponse {
	settings := s.state.Settings()
	seats := s.state.Seats()
	total := seating.TotalTables(settings.MaxSeats, settings.SeatsPerTable)

	tables := make([]response.TableResponse, 0, total)
	for t := 1; t <= total; t++ {
		start, end := seating.SeatRange(t, settings.SeatsPerTable)
		if end > settings.MaxSeats {
			end = settings.MaxSeats
		}
		table := response.TableResponse{
			Number: t,
			Name:   settings.TableNames[t],
			Note:   settings.TableNotes[t],
			Seats:  make([]response.SeatResponse, 0, end-start+1),
		}
		for n := start; n <= end; n++ {
			seat := seats[n-1]
			sr := response.SeatResponse{
				Number:    seat.Number,
				Occupied:  seat.Occupied,
				GuestCode: seat.GuestCode,
			}
			if seat.Occupied {
				if g, ok := s.state.Guest(seat.GuestCode); ok {
					sr.GuestName = g.Name
				}
			}
			table.Seats = append(table.Seats, sr)
		}
		tables = append(tables, table)
	}

	return &response.SeatMapResponse{
		MaxSeats:      settings.MaxSeats,
		SeatsPerTable: settings.SeatsPerTable,
		TotalTables:   total,
		Tables:        tables,
	}
}

func (s *seatingService) MySeat(ctx context.Context, code string) (*response.MySeatResponse, error) {
	guest, ok := s.state.Guest(utils.NormalizeCode(code))
	if !ok {
		return nil, ErrNotFound
	}

	resp := &response.MySeatResponse{}
	if guest.SeatNumber == nil {
		return resp, nil
	}

	settings := s.state.Settings()
	table := seating.TableOf(*guest.SeatNumber, settings.SeatsPerTable)
	resp.SeatNumber = guest.SeatNumber
	if table > 0 && table <= seating.TotalTables(settings.MaxSeats, settings.SeatsPerTable) {
		resp.TableNumber = &table
		resp.TableName = settings.TableNames[table]
		resp.TableNote = settings.TableNotes[table]
	}
	return resp, nil
}

func (s *seatingService) Assign(ctx context.Context, code string, seatNumber int) error {
	return s.state.AssignSeat(ctx, utils.NormalizeCode(code), seatNumber)
}

func (s *seatingService) AutoAssign(ctx context.Context) (*response.AutoAssignResponse, error) {
	changes, err := s.state.AutoAssignSeats(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("Auto-assign completed", zap.Int("changed", len(changes)))
	return &response.AutoAssignResponse{Changed: len(changes)}, nil
}

func (s *seatingService) GenerateCodes(ctx context.Context, count int) (*response.GeneratedCodesResponse, error) {
	codes, err := s.state.GenerateGuests(ctx, count)
	if err != nil {
		return nil, err
	}
	s.log.Info("Generated guest codes", zap.Int("count", len(codes)))
	return &response.GeneratedCodesResponse{Codes: codes}, nil
}
