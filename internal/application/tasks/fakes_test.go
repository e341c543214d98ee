package tasks_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// Dobles en memoria para los casos de uso de tareas. Solo implementan lo que
// los tests ejercitan; los métodos no usados devuelven el cero.

type fakeTaskRepo struct {
	tasks       map[string]*entity.Task
	activeCount int
	createErr   error
	created     []*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (f *fakeTaskRepo) Create(task *entity.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *task
	f.tasks[task.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) Update(task *entity.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return errors.New("tarea inexistente")
	}
	cp := *task
	f.tasks[task.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) UpdateStatus(id, status string) error {
	t, ok := f.tasks[id]
	if !ok {
		return errors.New("tarea inexistente")
	}
	t.Status = status
	return nil
}

func (f *fakeTaskRepo) ListByBrand(string, int, int) ([]*entity.Task, error)    { return nil, nil }
func (f *fakeTaskRepo) ListByStatus(string, int, int) ([]*entity.Task, error)   { return nil, nil }
func (f *fakeTaskRepo) ListByAssignee(string, int, int) ([]*entity.Task, error) { return nil, nil }
func (f *fakeTaskRepo) CountActiveByBrand(string) (int, error)                  { return f.activeCount, nil }
func (f *fakeTaskRepo) Delete(id string) error {
	delete(f.tasks, id)
	return nil
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (f *fakeClientRepo) Create(*entity.Client) error { return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) Update(*entity.Client) error                       { return nil }
func (f *fakeClientRepo) List(int, int) ([]*entity.Client, error)           { return nil, nil }
func (f *fakeClientRepo) Search(string, int, int) ([]*entity.Client, error) { return nil, nil }
func (f *fakeClientRepo) Delete(string) error                               { return nil }

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

type fakeBrandRepo struct {
	brands map[string]*entity.Brand
}

func (f *fakeBrandRepo) Create(*entity.Brand) error { return nil }
func (f *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) {
	return f.brands[id], nil
}
func (f *fakeBrandRepo) Update(*entity.Brand) error                             { return nil }
func (f *fakeBrandRepo) ListByClient(string, int, int) ([]*entity.Brand, error) { return nil, nil }
func (f *fakeBrandRepo) List(int, int) ([]*entity.Brand, error)                 { return nil, nil }
func (f *fakeBrandRepo) Delete(string) error                                    { return nil }

var _ repository.BrandRepository = (*fakeBrandRepo)(nil)

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func (f *fakeServiceRepo) Create(*entity.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	return f.services[id], nil
}
func (f *fakeServiceRepo) Update(*entity.Service) error                   { return nil }
func (f *fakeServiceRepo) List(bool, int, int) ([]*entity.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Delete(string) error                            { return nil }

var _ repository.ServiceRepository = (*fakeServiceRepo)(nil)

type fakeOverrideRepo struct {
	overrides map[string]*entity.PriceOverride // clave client|service
}

func overrideKey(clientID, serviceID string) string { return clientID + "|" + serviceID }

func (f *fakeOverrideRepo) Upsert(*entity.PriceOverride) error { return nil }
func (f *fakeOverrideRepo) GetByClientAndService(clientID, serviceID string) (*entity.PriceOverride, error) {
	return f.overrides[overrideKey(clientID, serviceID)], nil
}
func (f *fakeOverrideRepo) ListByClient(string) ([]*entity.PriceOverride, error) { return nil, nil }
func (f *fakeOverrideRepo) Delete(string, string) error                          { return nil }

var _ repository.PriceOverrideRepository = (*fakeOverrideRepo)(nil)

// fakeTaskTx simula la transacción de creación masiva: escribe en un repo de
// staging y solo vuelca al repo real si el callback termina sin error.
type fakeTaskTx struct {
	repo      *fakeTaskRepo
	rollbacks int
	commits   int
}

func (f *fakeTaskTx) RunTasks(_ context.Context, fn func(taskRepo repository.TaskRepository) error) error {
	staging := newFakeTaskRepo()
	staging.activeCount = f.repo.activeCount
	staging.createErr = f.repo.createErr
	if err := fn(staging); err != nil {
		f.rollbacks++
		return err
	}
	for _, t := range staging.created {
		f.repo.tasks[t.ID] = t
		f.repo.created = append(f.repo.created, t)
	}
	f.commits++
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decimalPtr(s string) *decimal.Decimal {
	d := mustDecimal(s)
	return &d
}

func fixedDate(day int) time.Time {
	return time.Date(2026, time.March, day, 10, 0, 0, 0, time.UTC)
}
