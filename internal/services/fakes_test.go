package services

import (
	"context"

	"github.com/google/uuid"

	dbm "carlog/internal/models/db_models"
)

// -------- test fakes --------

type fakeCarRepo struct {
	cars map[string]*dbm.Car

	findErr error
	saveErr error

	saves   int
	deletes []string
}

func newFakeCarRepo(cars ...*dbm.Car) *fakeCarRepo {
	f := &fakeCarRepo{cars: make(map[string]*dbm.Car)}
	for _, c := range cars {
		f.cars[c.ID.String()] = cloneCar(c)
	}
	return f
}

// cloneCar keeps the fake honest: a loaded car that is mutated but
// never saved must not leak back into the store.
func cloneCar(c *dbm.Car) *dbm.Car {
	cp := *c
	cp.Checks = make([]dbm.Check, len(c.Checks))
	for i, check := range c.Checks {
		checkCp := check
		checkCp.History = append([]dbm.HistoryEntry(nil), check.History...)
		cp.Checks[i] = checkCp
	}
	return &cp
}

func (f *fakeCarRepo) FindById(ctx context.Context, id string) (*dbm.Car, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	car, ok := f.cars[id]
	if !ok {
		return nil, nil
	}
	return cloneCar(car), nil
}

func (f *fakeCarRepo) FindByIds(ctx context.Context, ids []string) ([]dbm.Car, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []dbm.Car
	for _, id := range ids {
		if car, ok := f.cars[id]; ok {
			out = append(out, *cloneCar(car))
		}
	}
	return out, nil
}

func (f *fakeCarRepo) Insert(ctx context.Context, car *dbm.Car) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	// The real store assigns the id in a BeforeCreate hook.
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	f.cars[car.ID.String()] = cloneCar(car)
	return nil
}

func (f *fakeCarRepo) Save(ctx context.Context, car *dbm.Car) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.cars[car.ID.String()] = cloneCar(car)
	return nil
}

func (f *fakeCarRepo) Delete(ctx context.Context, id string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	delete(f.cars, id)
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*dbm.Account

	findErr error
	saveErr error
}

func newFakeAccountRepo(accounts ...*dbm.Account) *fakeAccountRepo {
	f := &fakeAccountRepo{accounts: make(map[string]*dbm.Account)}
	for _, a := range accounts {
		f.accounts[a.ID.String()] = a
	}
	return f
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *dbm.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*dbm.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Save(ctx context.Context, account *dbm.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.accounts[account.ID.String()] = account
	return nil
}

type fakeImageCleaner struct {
	cleared []string
}

func (f *fakeImageCleaner) Clear(imagePath string) {
	f.cleared = append(f.cleared, imagePath)
}
