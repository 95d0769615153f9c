package services

import (
	"context"

	"github.com/google/uuid"

	"carlog/internal/models/db_models"
	"carlog/internal/models/request_models"
	"carlog/internal/repositories"
	"carlog/pkg/utils"
)

// CheckService holds the state transitions for a car's maintenance
// checks and their history. Every operation loads the car, verifies
// ownership, transforms the checks document in memory and persists the
// whole car row.
type CheckServiceInterface interface {
	AddCheck(ctx context.Context, req request_models.NewCheckRequest, requesterId string) (*db_models.Car, error)
	EditCheck(ctx context.Context, req request_models.EditCheckRequest, requesterId string) (*db_models.Car, error)
	DeleteCheck(ctx context.Context, req request_models.DeleteCheckRequest, requesterId string) (*db_models.Car, error)
	CompleteCheck(ctx context.Context, req request_models.CompleteCheckRequest, requesterId string) (*db_models.Car, error)
	DeleteCheckHistoryItem(ctx context.Context, req request_models.DeleteCheckHistoryItemRequest, requesterId string) (*db_models.Car, error)
}

type CheckService struct {
	carRepo repositories.CarRepository
}

func NewCheckService(carRepo repositories.CarRepository) CheckServiceInterface {
	return &CheckService{
		carRepo: carRepo,
	}
}

func (s *CheckService) ownedCar(ctx context.Context, carId string, requesterId string) (*db_models.Car, error) {
	car, err := s.carRepo.FindById(ctx, carId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if car == nil {
		return nil, utils.ErrCarNotFound
	}
	if err := checkOwnership(car.AccountID, requesterId); err != nil {
		return nil, err
	}
	return car, nil
}

// Positional indices come straight from the front end's rendered lists;
// anything out of range for the freshly loaded document reads as the
// element not existing.
func checkAt(car *db_models.Car, checkIndex int) (*db_models.Check, error) {
	if checkIndex < 0 || checkIndex >= len(car.Checks) {
		return nil, utils.ErrCheckNotFound
	}
	return &car.Checks[checkIndex], nil
}

func historyInRange(check *db_models.Check, historyIndex int) error {
	if historyIndex < 0 || historyIndex >= len(check.History) {
		return utils.ErrHistoryEntryNotFound
	}
	return nil
}

// AddCheck appends a new check with its seed history entry, stamped
// with today's date and not yet completed.
func (s *CheckService) AddCheck(ctx context.Context, req request_models.NewCheckRequest, requesterId string) (*db_models.Car, error) {

	car, err := s.ownedCar(ctx, req.CarID, requesterId)
	if err != nil {
		return nil, err
	}

	car.Checks = append(car.Checks, db_models.Check{
		ID:    uuid.NewString(),
		Name:  req.Title,
		Color: req.Color,
		History: []db_models.HistoryEntry{{
			ID:           uuid.NewString(),
			AddDate:      utils.Today(),
			InitialCheck: req.InitialCheck,
			NextCheck:    req.NextCheck,
			CheckedOn:    "",
			Notes:        req.Notes,
		}},
	})

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return car, nil
}

// EditCheck replaces the check's name and color while keeping its
// history, then overwrites the addressed history entry. The entry's
// addDate (and id) survive the overwrite.
func (s *CheckService) EditCheck(ctx context.Context, req request_models.EditCheckRequest, requesterId string) (*db_models.Car, error) {

	car, err := s.ownedCar(ctx, req.CarID, requesterId)
	if err != nil {
		return nil, err
	}

	check, err := checkAt(car, *req.CheckIndex)
	if err != nil {
		return nil, err
	}
	if err := historyInRange(check, *req.HistoryIndex); err != nil {
		return nil, err
	}

	check.Name = req.Title
	check.Color = req.Color

	old := check.History[*req.HistoryIndex]
	check.History[*req.HistoryIndex] = db_models.HistoryEntry{
		ID:           old.ID,
		AddDate:      old.AddDate,
		CheckedOn:    req.CheckedOn,
		InitialCheck: req.InitialCheck,
		NextCheck:    req.NextCheck,
		Notes:        req.Notes,
	}

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return car, nil
}

// DeleteCheck removes exactly the check at the given position; any
// structurally identical siblings are left alone.
func (s *CheckService) DeleteCheck(ctx context.Context, req request_models.DeleteCheckRequest, requesterId string) (*db_models.Car, error) {

	car, err := s.ownedCar(ctx, req.CarID, requesterId)
	if err != nil {
		return nil, err
	}

	ci := *req.CheckIndex
	if _, err := checkAt(car, ci); err != nil {
		return nil, err
	}

	car.Checks = append(car.Checks[:ci], car.Checks[ci+1:]...)

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return car, nil
}

// CompleteCheck closes out the current head entry and opens a fresh
// pending one in a single write: the new history is built as
// [blank, completed head, rest...] rather than patched in place.
func (s *CheckService) CompleteCheck(ctx context.Context, req request_models.CompleteCheckRequest, requesterId string) (*db_models.Car, error) {

	car, err := s.ownedCar(ctx, req.CarID, requesterId)
	if err != nil {
		return nil, err
	}

	check, err := checkAt(car, *req.CheckIndex)
	if err != nil {
		return nil, err
	}
	if len(check.History) == 0 {
		return nil, utils.ErrHistoryEntryNotFound
	}

	today := utils.Today()

	completed := check.History[0]
	completed.CheckedOn = today

	blank := db_models.HistoryEntry{
		ID:           uuid.NewString(),
		AddDate:      today,
		CheckedOn:    "",
		InitialCheck: "",
		NextCheck:    "",
		Notes:        "",
	}

	check.History = append([]db_models.HistoryEntry{blank, completed}, check.History[1:]...)

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return car, nil
}

// DeleteCheckHistoryItem removes exactly the history entry at the given
// position within the addressed check.
func (s *CheckService) DeleteCheckHistoryItem(ctx context.Context, req request_models.DeleteCheckHistoryItemRequest, requesterId string) (*db_models.Car, error) {

	car, err := s.ownedCar(ctx, req.CarID, requesterId)
	if err != nil {
		return nil, err
	}

	check, err := checkAt(car, *req.CheckIndex)
	if err != nil {
		return nil, err
	}

	hi := *req.HistoryIndex
	if err := historyInRange(check, hi); err != nil {
		return nil, err
	}

	check.History = append(check.History[:hi], check.History[hi+1:]...)

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return car, nil
}
