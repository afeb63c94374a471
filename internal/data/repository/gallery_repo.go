package repository

import (
	"context"
	"fmt"

	"wedding-portal/internal/data/entity"
	"wedding-portal/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

// ==================== GALLERY ====================

func (r *galleryRepository) FindGallery(ctx context.Context) ([]*entity.GalleryItem, error) {
	query := `SELECT id, image_url, caption, created_at FROM gallery_items ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find gallery items", zap.Error(err))
		return nil, fmt.Errorf("failed to find gallery items: %w", err)
	}
	defer rows.Close()

	var items []*entity.GalleryItem
	for rows.Next() {
		var item entity.GalleryItem
		if err := rows.Scan(&item.ID, &item.ImageURL, &item.Caption, &item.CreatedAt); err != nil {
			r.log.Error("Failed to scan gallery item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *galleryRepository) AddGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	query := `INSERT INTO gallery_items (id, image_url, caption, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, item.ID, item.ImageURL, item.Caption, item.CreatedAt)
	if err != nil {
		r.log.Error("Failed to add gallery item", zap.Error(err))
		return fmt.Errorf("failed to add gallery item: %w", err)
	}

	return nil
}

func (r *galleryRepository) UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	query := `UPDATE gallery_items SET image_url = $2, caption = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, item.ID, item.ImageURL, item.Caption)
	if err != nil {
		r.log.Error("Failed to update gallery item", zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("failed to update gallery item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery item %s not found", item.ID)
	}

	return nil
}

func (r *galleryRepository) RemoveGalleryItem(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gallery_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove gallery item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to remove gallery item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery item %s not found", id)
	}

	return nil
}

// ==================== WEDDING PARTY ====================

func (r *galleryRepository) FindParty(ctx context.Context) ([]*entity.PartyMember, error) {
	query := `SELECT id, name, role, photo_url, created_at FROM party_members ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find party members", zap.Error(err))
		return nil, fmt.Errorf("failed to find party members: %w", err)
	}
	defer rows.Close()

	var members []*entity.PartyMember
	for rows.Next() {
		var m entity.PartyMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.CreatedAt); err != nil {
			r.log.Error("Failed to scan party member", zap.Error(err))
			return nil, fmt.Errorf("failed to scan party member: %w", err)
		}
		members = append(members, &m)
	}

	return members, rows.Err()
}

func (r *galleryRepository) AddPartyMember(ctx context.Context, member *entity.PartyMember) error {
	query := `INSERT INTO party_members (id, name, role, photo_url, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, member.ID, member.Name, member.Role, member.PhotoURL, member.CreatedAt)
	if err != nil {
		r.log.Error("Failed to add party member", zap.Error(err), zap.String("name", member.Name))
		return fmt.Errorf("failed to add party member: %w", err)
	}

	return nil
}

func (r *galleryRepository) UpdatePartyMember(ctx context.Context, member *entity.PartyMember) error {
	query := `UPDATE party_members SET name = $2, role = $3, photo_url = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, member.ID, member.Name, member.Role, member.PhotoURL)
	if err != nil {
		r.log.Error("Failed to update party member", zap.Error(err), zap.String("id", member.ID.String()))
		return fmt.Errorf("failed to update party member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("party member %s not found", member.ID)
	}

	return nil
}

func (r *galleryRepository) RemovePartyMember(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM party_members WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove party member", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to remove party member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("party member %s not found", id)
	}

	return nil
}
