package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"carlog/internal/models/db_models"
	"carlog/internal/models/request_models"
	"carlog/internal/repositories"
	"carlog/pkg/utils"
)

type CarServiceInterface interface {
	CreateCar(ctx context.Context, req request_models.CreateCarRequest, requesterId string) (*db_models.Car, error)
	EditCar(ctx context.Context, req request_models.EditCarRequest, requesterId string) (*db_models.Car, error)
	DeleteCar(ctx context.Context, carId string, requesterId string) error
	ListCars(ctx context.Context, requesterId string) ([]db_models.Car, error)
}

type CarService struct {
	carRepo     repositories.CarRepository
	accountRepo repositories.AccountRepository
	images      utils.ImageCleaner
}

func NewCarService(
	carRepo repositories.CarRepository,
	accountRepo repositories.AccountRepository,
	images utils.ImageCleaner,
) CarServiceInterface {
	return &CarService{
		carRepo:     carRepo,
		accountRepo: accountRepo,
		images:      images,
	}
}

// checkOwnership is the guard applied before any mutation of a car or
// its checks: both ids compared in canonical string form.
func checkOwnership(ownerId uuid.UUID, requesterId string) error {
	if ownerId.String() != requesterId {
		return utils.ErrNotAuthorized
	}
	return nil
}

func (s *CarService) CreateCar(ctx context.Context, req request_models.CreateCarRequest, requesterId string) (*db_models.Car, error) {

	ownerId, err := uuid.Parse(requesterId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	newCar := &db_models.Car{
		Brand:     req.Brand,
		CarModel:  req.CarModel,
		AccountID: ownerId,
		Image:     req.Image,
		Checks:    []db_models.Check{},
	}

	if err := s.carRepo.Insert(ctx, newCar); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Keep the owner-side car index in sync. A missing account is
	// skipped: the car row is the primary record.
	account, err := s.accountRepo.FindById(ctx, requesterId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		account.Cars = append(account.Cars, newCar.ID.String())
		if err := s.accountRepo.Save(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return newCar, nil
}

func (s *CarService) EditCar(ctx context.Context, req request_models.EditCarRequest, requesterId string) (*db_models.Car, error) {

	car, err := s.carRepo.FindById(ctx, req.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if car == nil {
		return nil, utils.ErrCarNotFound
	}

	if err := checkOwnership(car.AccountID, requesterId); err != nil {
		return nil, err
	}

	car.Brand = req.Brand
	car.CarModel = req.CarModel

	oldImage := car.Image
	if req.Image != "" {
		car.Image = req.Image
	}

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Only unlink the old file when the reference actually changed.
	if oldImage != car.Image {
		s.images.Clear(oldImage)
	}

	return car, nil
}

func (s *CarService) DeleteCar(ctx context.Context, carId string, requesterId string) error {

	car, err := s.carRepo.FindById(ctx, carId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if car == nil {
		return utils.ErrCarNotFound
	}

	if err := checkOwnership(car.AccountID, requesterId); err != nil {
		return err
	}

	s.images.Clear(car.Image)

	if err := s.carRepo.Delete(ctx, carId); err != nil {
		return utils.ErrDatabaseError
	}

	// Best-effort index sync: the car is already gone, so failures
	// here are logged and the deletion still reports success.
	account, err := s.accountRepo.FindById(ctx, requesterId)
	if err != nil || account == nil {
		if err != nil {
			log.Printf("Failed to load account %s for car index sync: %v", requesterId, err)
		}
		return nil
	}

	kept := account.Cars[:0]
	for _, id := range account.Cars {
		if id != carId {
			kept = append(kept, id)
		}
	}
	account.Cars = kept

	if err := s.accountRepo.Save(ctx, account); err != nil {
		log.Printf("Failed to remove car %s from account %s: %v", carId, requesterId, err)
	}

	return nil
}

func (s *CarService) ListCars(ctx context.Context, requesterId string) ([]db_models.Car, error) {

	account, err := s.accountRepo.FindById(ctx, requesterId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	cars, err := s.carRepo.FindByIds(ctx, account.Cars)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Return the cars in the order of the owner's index.
	byId := make(map[string]db_models.Car, len(cars))
	for _, car := range cars {
		byId[car.ID.String()] = car
	}

	out := make([]db_models.Car, 0, len(cars))
	for _, id := range account.Cars {
		if car, ok := byId[id]; ok {
			out = append(out, car)
		}
	}
	return out, nil
}
