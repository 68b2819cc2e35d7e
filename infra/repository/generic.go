// Package repository implements the persistence contracts on GORM.
package repository

import (
	"context"
	"errors"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/repository"
	"gorm.io/gorm"
)

// GenericRepository implements repository.Repository for GORM.
type GenericRepository[T any] struct {
	db *gorm.DB
}

// NewGenericRepository creates a generic repository bound to db, which
// may be a transaction session.
func NewGenericRepository[T any](db *gorm.DB) *GenericRepository[T] {
	return &GenericRepository[T]{db: db}
}

func (r *GenericRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *GenericRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *GenericRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *GenericRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GenericRepository[T]) List(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := r.db.WithContext(ctx).Find(&entities).Error
	return entities, err
}

func (r *GenericRepository[T]) FindBy(ctx context.Context, query any, args ...any) ([]*T, error) {
	var entities []*T
	err := r.db.WithContext(ctx).Where(query, args...).Find(&entities).Error
	return entities, err
}

func (r *GenericRepository[T]) FindOneBy(ctx context.Context, query any, args ...any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// translate maps GORM errors to domain sentinels so callers never
// depend on the ORM.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

var _ repository.Repository[domain.Currency] = (*GenericRepository[domain.Currency])(nil)
