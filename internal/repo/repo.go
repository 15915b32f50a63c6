// Package repo provides the generic persistence layer shared by every content
// type. Each entity gets a Repository parameterized by its model, carrying the
// entity's display ordering; entity-specific rules (caps, singletons, toggles)
// live in the services built on top.
package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound reports that the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// Repository wraps CRUD operations for a single model. Every call hits the
// database; there is no caching layer.
type Repository[T any] struct {
	db      *gorm.DB
	orderBy []string
}

// New builds a repository. orderBy clauses are applied to List in the given
// order; ties fall back to id ascending so listing stays deterministic.
func New[T any](gdb *gorm.DB, orderBy ...string) *Repository[T] {
	return &Repository[T]{db: gdb, orderBy: orderBy}
}

// List returns all rows in display order. The result is never nil.
func (r *Repository[T]) List() ([]T, error) {
	items := make([]T, 0)
	query := r.db.Model(new(T))
	for _, clause := range r.orderBy {
		query = query.Order(clause)
	}
	query = query.Order("id asc")
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one row by id.
func (r *Repository[T]) Get(id uint) (*T, error) {
	var item T
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts the row; the database assigns id and timestamps.
func (r *Repository[T]) Create(item *T) error {
	return r.db.Create(item).Error
}

// Updates applies a partial update: only the supplied columns change, and
// updated_at is stamped. Returns the row as stored after the update.
func (r *Repository[T]) Updates(id uint, fields map[string]any) (*T, error) {
	item, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(item).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

// Save writes the full row back.
func (r *Repository[T]) Save(item *T) error {
	return r.db.Save(item).Error
}

// Delete removes the row. Deleting an absent row reports ErrNotFound; callers
// deleting may treat that as success since the end state is identical.
func (r *Repository[T]) Delete(id uint) error {
	item, err := r.Get(id)
	if err != nil {
		return err
	}
	return r.db.Delete(item).Error
}

// Count returns the number of rows.
func (r *Repository[T]) Count() (int64, error) {
	var count int64
	if err := r.db.Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// First returns the singleton row, or nil without error when the table is
// empty. With more than one row the oldest wins so the table stays editable.
func (r *Repository[T]) First() (*T, error) {
	var item T
	if err := r.db.Order("id asc").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
