package repository

import (
	"context"
	"fmt"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

// ==================== ASOEBI ====================

func (r *catalogRepository) FindAsoebi(ctx context.Context) ([]*entity.AsoebiItem, error) {
	query := `SELECT id, name, description, price, image_url, created_at FROM asoebi_items ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find asoebi items", zap.Error(err))
		return nil, fmt.Errorf("failed to find asoebi items: %w", err)
	}
	defer rows.Close()

	var items []*entity.AsoebiItem
	for rows.Next() {
		var item entity.AsoebiItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt); err != nil {
			r.log.Error("Failed to scan asoebi item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan asoebi item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *catalogRepository) AddAsoebi(ctx context.Context, item *entity.AsoebiItem) error {
	query := `INSERT INTO asoebi_items (id, name, description, price, image_url, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price, item.ImageURL, item.CreatedAt)
	if err != nil {
		r.log.Error("Failed to add asoebi item", zap.Error(err), zap.String("name", item.Name))
		return fmt.Errorf("failed to add asoebi item: %w", err)
	}

	return nil
}

func (r *catalogRepository) UpdateAsoebi(ctx context.Context, item *entity.AsoebiItem) error {
	query := `UPDATE asoebi_items SET name = $2, description = $3, price = $4, image_url = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price, item.ImageURL)
	if err != nil {
		r.log.Error("Failed to update asoebi item", zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("failed to update asoebi item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("asoebi item %s not found", item.ID)
	}

	return nil
}

func (r *catalogRepository) RemoveAsoebi(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM asoebi_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove asoebi item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to remove asoebi item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("asoebi item %s not found", id)
	}

	return nil
}

// ==================== REGISTRY ====================

func (r *catalogRepository) FindRegistry(ctx context.Context) ([]*entity.RegistryItem, error) {
	query := `SELECT id, name, description, price, link, created_at FROM registry_items ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find registry items", zap.Error(err))
		return nil, fmt.Errorf("failed to find registry items: %w", err)
	}
	defer rows.Close()

	var items []*entity.RegistryItem
	for rows.Next() {
		var item entity.RegistryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Link, &item.CreatedAt); err != nil {
			r.log.Error("Failed to scan registry item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan registry item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *catalogRepository) AddRegistry(ctx context.Context, item *entity.RegistryItem) error {
	query := `INSERT INTO registry_items (id, name, description, price, link, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price, item.Link, item.CreatedAt)
	if err != nil {
		r.log.Error("Failed to add registry item", zap.Error(err), zap.String("name", item.Name))
		return fmt.Errorf("failed to add registry item: %w", err)
	}

	return nil
}

func (r *catalogRepository) UpdateRegistry(ctx context.Context, item *entity.RegistryItem) error {
	query := `UPDATE registry_items SET name = $2, description = $3, price = $4, link = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price, item.Link)
	if err != nil {
		r.log.Error("Failed to update registry item", zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("failed to update registry item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("registry item %s not found", item.ID)
	}

	return nil
}

func (r *catalogRepository) RemoveRegistry(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM registry_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove registry item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to remove registry item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("registry item %s not found", id)
	}

	return nil
}

// ==================== PAYMENT DETAILS ====================

func (r *catalogRepository) FindPayment(ctx context.Context) (*entity.PaymentDetails, error) {
	query := `
		SELECT id, bank_name, account_name, account_number, created_at
		FROM payment_details
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p entity.PaymentDetails
	err := r.db.QueryRow(ctx, query).Scan(&p.ID, &p.BankName, &p.AccountName, &p.AccountNumber, &p.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment details", zap.Error(err))
		return nil, fmt.Errorf("failed to find payment details: %w", err)
	}

	return &p, nil
}

func (r *catalogRepository) SavePayment(ctx context.Context, details *entity.PaymentDetails) error {
	query := `INSERT INTO payment_details (id, bank_name, account_name, account_number, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, details.ID, details.BankName, details.AccountName, details.AccountNumber, details.CreatedAt)
	if err != nil {
		r.log.Error("Failed to save payment details", zap.Error(err))
		return fmt.Errorf("failed to save payment details: %w", err)
	}

	return nil
}
