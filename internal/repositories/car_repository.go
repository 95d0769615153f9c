// internal/repositories/car_repo.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "carlog/internal/models/db_models"
)

type CarRepository interface {
	FindById(ctx context.Context, id string) (*dbm.Car, error)
	FindByIds(ctx context.Context, ids []string) ([]dbm.Car, error)
	Insert(ctx context.Context, car *dbm.Car) error
	Save(ctx context.Context, car *dbm.Car) error
	Delete(ctx context.Context, id string) error
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) FindById(ctx context.Context, id string) (*dbm.Car, error) {

	var car dbm.Car
	err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &car, nil
}

func (r *carRepository) FindByIds(ctx context.Context, ids []string) ([]dbm.Car, error) {

	var cars []dbm.Car
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&cars).Error

	if err != nil {
		return nil, err
	}

	return cars, nil
}

func (r *carRepository) Insert(ctx context.Context, car *dbm.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Save writes every column of the row, including the jsonb checks
// document, so in-place edits to nested history entries always land.
func (r *carRepository) Save(ctx context.Context, car *dbm.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *carRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&dbm.Car{}, "id = ?", id).Error
}
