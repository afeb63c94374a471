package repository

import (
	"context"
	"fmt"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

// ==================== FOOD ====================

func (r *menuRepository) FindFood(ctx context.Context) ([]*entity.FoodItem, error) {
	query := `SELECT id, name, description, tier, created_at FROM food_items ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find food items", zap.Error(err))
		return nil, fmt.Errorf("failed to find food items: %w", err)
	}
	defer rows.Close()

	var items []*entity.FoodItem
	for rows.Next() {
		var item entity.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Tier, &item.CreatedAt); err != nil {
			r.log.Error("Failed to scan food item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *menuRepository) AddFood(ctx context.Context, item *entity.FoodItem) error {
	query := `INSERT INTO food_items (id, name, description, tier, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Tier, item.CreatedAt)
	if err != nil {
		r.log.Error("Failed to add food item", zap.Error(err), zap.String("name", item.Name))
		return fmt.Errorf("failed to add food item: %w", err)
	}

	return nil
}

func (r *menuRepository) UpdateFood(ctx context.Context, item *entity.FoodItem) error {
	query := `UPDATE food_items SET name = $2, description = $3, tier = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Tier)
	if err != nil {
		r.log.Error("Failed to update food item", zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("failed to update food item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("food item %s not found", item.ID)
	}

	return nil
}

func (r *menuRepository) RemoveFood(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM food_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove food item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to remove food item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("food item %s not found", id)
	}

	return nil
}

// ==================== DRINKS ====================

func (r *menuRepository) FindDrinks(ctx context.Context) ([]*entity.DrinkItem, error) {
	query := `SELECT id, name, description, tier, created_at FROM drink_items ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find drink items", zap.Error(err))
		return nil, fmt.Errorf("failed to find drink items: %w", err)
	}
	defer rows.Close()

	var items []*entity.DrinkItem
	for rows.Next() {
		var item entity.DrinkItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Tier, &item.CreatedAt); err != nil {
			r.log.Error("Failed to scan drink item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan drink item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *menuRepository) AddDrink(ctx context.Context, item *entity.DrinkItem) error {
	query := `INSERT INTO drink_items (id, name, description, tier, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Tier, item.CreatedAt)
	if err != nil {
		r.log.Error("Failed to add drink item", zap.Error(err), zap.String("name", item.Name))
		return fmt.Errorf("failed to add drink item: %w", err)
	}

	return nil
}

func (r *menuRepository) UpdateDrink(ctx context.Context, item *entity.DrinkItem) error {
	query := `UPDATE drink_items SET name = $2, description = $3, tier = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Tier)
	if err != nil {
		r.log.Error("Failed to update drink item", zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("failed to update drink item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("drink item %s not found", item.ID)
	}

	return nil
}

func (r *menuRepository) RemoveDrink(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM drink_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove drink item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to remove drink item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("drink item %s not found", id)
	}

	return nil
}
