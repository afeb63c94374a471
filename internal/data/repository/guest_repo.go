package repository

import (
	"context"
	"fmt"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

const guestColumns = `code, name, seat_number, arrived, meal_served, drink_served, food_choice, drink_choice, category, created_at`

func scanGuest(row pgx.Row) (*entity.Guest, error) {
	var g entity.Guest
	err := row.Scan(
		&g.Code,
		&g.Name,
		&g.SeatNumber,
		&g.Arrived,
		&g.MealServed,
		&g.DrinkServed,
		&g.FoodChoice,
		&g.DrinkChoice,
		&g.Category,
		&g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guestRepository) FindAll(ctx context.Context) ([]*entity.Guest, error) {
	query := fmt.Sprintf(`SELECT %s FROM guests ORDER BY created_at, code`, guestColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find guests", zap.Error(err))
		return nil, fmt.Errorf("failed to find guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

func (r *guestRepository) FindByCode(ctx context.Context, code string) (*entity.Guest, error) {
	query := fmt.Sprintf(`SELECT %s FROM guests WHERE code = $1`, guestColumns)

	g, err := scanGuest(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}

	return g, nil
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (code, name, seat_number, arrived, meal_served, drink_served, food_choice, drink_choice, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		guest.Code,
		guest.Name,
		guest.SeatNumber,
		guest.Arrived,
		guest.MealServed,
		guest.DrinkServed,
		guest.FoodChoice,
		guest.DrinkChoice,
		guest.Category,
		guest.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("code", guest.Code),
		)
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

func (r *guestRepository) CreateBatch(ctx context.Context, guests []*entity.Guest) error {
	if len(guests) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO guests (code, name, seat_number, arrived, meal_served, drink_served, food_choice, drink_choice, category, created_at) VALUES `
	args := []interface{}{}

	for i, g := range guests {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*10+1, i*10+2, i*10+3, i*10+4, i*10+5, i*10+6, i*10+7, i*10+8, i*10+9, i*10+10)

		args = append(args,
			g.Code,
			g.Name,
			g.SeatNumber,
			g.Arrived,
			g.MealServed,
			g.DrinkServed,
			g.FoodChoice,
			g.DrinkChoice,
			g.Category,
			g.CreatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch guests",
			zap.Error(err),
			zap.Int("count", len(guests)),
		)
		return fmt.Errorf("failed to create batch guests: %w", err)
	}

	return nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, seat_number = $3, arrived = $4, meal_served = $5, drink_served = $6, food_choice = $7, drink_choice = $8, category = $9
		WHERE code = $1
	`

	result, err := r.db.Exec(ctx, query,
		guest.Code,
		guest.Name,
		guest.SeatNumber,
		guest.Arrived,
		guest.MealServed,
		guest.DrinkServed,
		guest.FoodChoice,
		guest.DrinkChoice,
		guest.Category,
	)

	if err != nil {
		r.log.Error("Failed to update guest",
			zap.Error(err),
			zap.String("code", guest.Code),
		)
		return fmt.Errorf("failed to update guest: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", guest.Code)
	}

	return nil
}

func (r *guestRepository) UpdateSeat(ctx context.Context, code string, seatNumber *int) error {
	query := `UPDATE guests SET seat_number = $2 WHERE code = $1`

	result, err := r.db.Exec(ctx, query, code, seatNumber)
	if err != nil {
		r.log.Error("Failed to update guest seat",
			zap.Error(err),
			zap.String("code", code),
		)
		return fmt.Errorf("failed to update guest seat: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", code)
	}

	return nil
}
