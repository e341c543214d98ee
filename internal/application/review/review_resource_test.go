package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/review"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria. El fakeReviewTx reproduce la semántica transaccional:
// las tres escrituras del callback solo quedan si ninguna falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeResourceRepo struct {
	resources map[string]*entity.Resource
	updateErr error
}

func (f *fakeResourceRepo) Create(*entity.Resource) error { return nil }
func (f *fakeResourceRepo) GetByID(id string) (*entity.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}
func (f *fakeResourceRepo) UpdateReview(id, status, notes string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	r, ok := f.resources[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	r.ReviewNotes = notes
	return nil
}
func (f *fakeResourceRepo) ListByTask(string) ([]*entity.Resource, error) { return nil, nil }
func (f *fakeResourceRepo) ListByBrand(string, int, int) ([]*entity.Resource, error) {
	return nil, nil
}
func (f *fakeResourceRepo) ListByStatus(string, int, int) ([]*entity.Resource, error) {
	return nil, nil
}
func (f *fakeResourceRepo) Delete(string) error { return nil }

var _ repository.ResourceRepository = (*fakeResourceRepo)(nil)

type fakeHistoryRepo struct {
	entries   []*entity.ResourceReviewHistory
	createErr error
}

func (f *fakeHistoryRepo) Create(entry *entity.ResourceReviewHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *entry
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeHistoryRepo) ListByResource(resourceID string) ([]*entity.ResourceReviewHistory, error) {
	var out []*entity.ResourceReviewHistory
	for _, e := range f.entries {
		if e.ResourceID == resourceID {
			out = append(out, e)
		}
	}
	return out, nil
}

var _ repository.ReviewHistoryRepository = (*fakeHistoryRepo)(nil)

type fakeTaskRepo struct {
	tasks     map[string]*entity.Task
	created   []*entity.Task
	createErr error
}

func (f *fakeTaskRepo) Create(task *entity.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *task
	f.created = append(f.created, &cp)
	return nil
}
func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	return f.tasks[id], nil
}
func (f *fakeTaskRepo) Update(*entity.Task) error                             { return nil }
func (f *fakeTaskRepo) UpdateStatus(string, string) error                     { return nil }
func (f *fakeTaskRepo) ListByBrand(string, int, int) ([]*entity.Task, error)  { return nil, nil }
func (f *fakeTaskRepo) ListByStatus(string, int, int) ([]*entity.Task, error) { return nil, nil }
func (f *fakeTaskRepo) ListByAssignee(string, int, int) ([]*entity.Task, error) {
	return nil, nil
}
func (f *fakeTaskRepo) CountActiveByBrand(string) (int, error) { return 0, nil }
func (f *fakeTaskRepo) Delete(string) error                    { return nil }

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

type fakeBrandRepo struct {
	brands map[string]*entity.Brand
}

func (f *fakeBrandRepo) Create(*entity.Brand) error               { return nil }
func (f *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) { return f.brands[id], nil }
func (f *fakeBrandRepo) Update(*entity.Brand) error               { return nil }
func (f *fakeBrandRepo) ListByClient(string, int, int) ([]*entity.Brand, error) {
	return nil, nil
}
func (f *fakeBrandRepo) List(int, int) ([]*entity.Brand, error) { return nil, nil }
func (f *fakeBrandRepo) Delete(string) error                    { return nil }

var _ repository.BrandRepository = (*fakeBrandRepo)(nil)

// fakeReviewTx ejecuta el callback contra copias y solo vuelca al estado real
// si el callback termina sin error.
type fakeReviewTx struct {
	resources *fakeResourceRepo
	history   *fakeHistoryRepo
	tasks     *fakeTaskRepo
	rollbacks int
	commits   int
}

func (f *fakeReviewTx) RunReview(_ context.Context, fn func(
	resourceRepo repository.ResourceRepository,
	historyRepo repository.ReviewHistoryRepository,
	taskRepo repository.TaskRepository,
) error) error {
	stagedResources := &fakeResourceRepo{resources: map[string]*entity.Resource{}, updateErr: f.resources.updateErr}
	for id, r := range f.resources.resources {
		cp := *r
		stagedResources.resources[id] = &cp
	}
	stagedHistory := &fakeHistoryRepo{createErr: f.history.createErr}
	stagedTasks := &fakeTaskRepo{tasks: f.tasks.tasks, createErr: f.tasks.createErr}

	if err := fn(stagedResources, stagedHistory, stagedTasks); err != nil {
		f.rollbacks++
		return err
	}
	f.resources.resources = stagedResources.resources
	f.history.entries = append(f.history.entries, stagedHistory.entries...)
	f.tasks.created = append(f.tasks.created, stagedTasks.created...)
	f.commits++
	return nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Notify(_ context.Context, event, _ string) {
	f.events = append(f.events, event)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un recurso pendiente ligado a una tarea de origen asignada.
// ──────────────────────────────────────────────────────────────────────────────

const (
	resourceID   = "rs-1"
	originTaskID = "t-origen"
	clientID     = "cl-1"
	brandID      = "br-1"
	serviceID    = "sv-1"
	assigneeID   = "co-op"
	uploaderID   = "co-fl"
	reviewerID   = "co-dir"
)

type reviewFixture struct {
	uc        *review.ReviewResourceUseCase
	resources *fakeResourceRepo
	history   *fakeHistoryRepo
	tasks     *fakeTaskRepo
	tx        *fakeReviewTx
	notifier  *fakeNotifier
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	resources := &fakeResourceRepo{resources: map[string]*entity.Resource{
		resourceID: {
			ID:         resourceID,
			TaskID:     originTaskID,
			BrandID:    brandID,
			Name:       "Banner campaña abril",
			Type:       entity.ResourceTypeImage,
			Status:     entity.ResourceStatusPendiente,
			UploadedBy: uploaderID,
		},
	}}
	tasksRepo := &fakeTaskRepo{tasks: map[string]*entity.Task{
		originTaskID: {
			ID:         originTaskID,
			ClientID:   clientID,
			BrandID:    brandID,
			ServiceID:  serviceID,
			Title:      "Banner abril",
			Status:     entity.TaskStatusRevision,
			AssignedTo: assigneeID,
		},
	}}
	history := &fakeHistoryRepo{}
	brands := &fakeBrandRepo{brands: map[string]*entity.Brand{
		brandID: {ID: brandID, ClientID: clientID},
	}}
	tx := &fakeReviewTx{resources: resources, history: history, tasks: tasksRepo}
	notifier := &fakeNotifier{}

	perm := permission.NewChecker(permission.DefaultMatrix(), nil)
	uc := review.NewReviewResourceUseCase(tx, resources, tasksRepo, brands, perm, notifier)
	return &reviewFixture{uc: uc, resources: resources, history: history, tasks: tasksRepo, tx: tx, notifier: notifier}
}

func reviewer() dto.Actor {
	return dto.Actor{ID: reviewerID, Email: "dir@agencia.co", Role: entity.RoleDirector}
}

func TestReviewResource_RequiereEditAll(t *testing.T) {
	f := newReviewFixture(t)
	operador := dto.Actor{ID: "co-op", Role: entity.RoleOperador}

	_, err := f.uc.ReviewResource(context.Background(), operador, resourceID, dto.ReviewResourceRequest{
		Status: entity.ResourceStatusAprobado,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.history.entries)
}

func TestReviewResource_ObservacionesObligatorias(t *testing.T) {
	f := newReviewFixture(t)

	for _, status := range []string{entity.ResourceStatusNecesitaCambios, entity.ResourceStatusRechazado} {
		_, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
			Status:       status,
			Observations: "   ",
		})
		ve, ok := domain.AsValidation(err)
		require.True(t, ok, "%s sin observaciones debe fallar la validación", status)
		assert.Contains(t, ve.Fields, "observations")
	}

	// Nada quedó escrito: ni historial, ni tarea, ni cambio de estado.
	assert.Empty(t, f.history.entries)
	assert.Empty(t, f.tasks.created)
	assert.Equal(t, entity.ResourceStatusPendiente, f.resources.resources[resourceID].Status)
	assert.Zero(t, f.tx.commits)
}

func TestReviewResource_RechazadoGeneraCorreccion(t *testing.T) {
	f := newReviewFixture(t)

	resp, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
		Status:       entity.ResourceStatusRechazado,
		Observations: "El logo está pixelado",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ResourceStatusRechazado, resp.Resource.Status)
	assert.Equal(t, "El logo está pixelado", resp.Resource.ReviewNotes)

	// Una fila de historial exacta.
	require.Len(t, f.history.entries, 1)
	entry := f.history.entries[0]
	assert.Equal(t, resourceID, entry.ResourceID)
	assert.Equal(t, entity.ResourceStatusPendiente, entry.OldStatus)
	assert.Equal(t, entity.ResourceStatusRechazado, entry.NewStatus)
	assert.Equal(t, "El logo está pixelado", entry.Notes)
	assert.Equal(t, reviewerID, entry.ReviewedBy)

	// La tarea de corrección hereda marca, cliente, servicio y asignado de la
	// tarea de origen, con prioridad alta y sin precio.
	require.NotNil(t, resp.CorrectionTask)
	require.Len(t, f.tasks.created, 1)
	correction := f.tasks.created[0]
	assert.Equal(t, "Corrección: Banner campaña abril", correction.Title)
	assert.Equal(t, entity.TaskPriorityAlta, correction.Priority)
	assert.Equal(t, entity.TaskStatusEnFila, correction.Status)
	assert.Equal(t, brandID, correction.BrandID)
	assert.Equal(t, clientID, correction.ClientID)
	assert.Equal(t, serviceID, correction.ServiceID)
	assert.Equal(t, assigneeID, correction.AssignedTo, "hereda el asignado de la tarea de origen")
	assert.True(t, correction.CustomPrice)
	assert.True(t, correction.Price.IsZero(), "la corrección no se cobra")
	assert.True(t, correction.DueDate.After(correction.RequestDate))

	assert.Equal(t, 1, f.tx.commits)
	assert.Equal(t, []string{"resource_reviewed"}, f.notifier.events)
}

func TestReviewResource_AprobadoNoGeneraCorreccion(t *testing.T) {
	f := newReviewFixture(t)

	resp, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
		Status: entity.ResourceStatusAprobado,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CorrectionTask)
	assert.Empty(t, f.tasks.created)
	// Aun así queda la fila de historial.
	require.Len(t, f.history.entries, 1)
	assert.Equal(t, entity.ResourceStatusAprobado, f.history.entries[0].NewStatus)
}

func TestReviewResource_RecursoSueltoUsaMarcaYQuienSubio(t *testing.T) {
	f := newReviewFixture(t)
	f.resources.resources[resourceID].TaskID = ""

	resp, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
		Status:       entity.ResourceStatusNecesitaCambios,
		Observations: "Cambiar paleta de colores",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CorrectionTask)
	require.Len(t, f.tasks.created, 1)
	correction := f.tasks.created[0]
	assert.Equal(t, brandID, correction.BrandID)
	assert.Equal(t, clientID, correction.ClientID, "el cliente se resuelve por la marca del recurso")
	assert.Equal(t, uploaderID, correction.AssignedTo, "sin tarea de origen se asigna a quien subió")
}

func TestReviewResource_AprobadoEsTerminal(t *testing.T) {
	f := newReviewFixture(t)
	f.resources.resources[resourceID].Status = entity.ResourceStatusAprobado

	_, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
		Status:       entity.ResourceStatusRechazado,
		Observations: "Cambio de opinión",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, f.history.entries)
}

func TestReviewResource_ReRevisionAcumulaHistorial(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	_, err := f.uc.ReviewResource(ctx, reviewer(), resourceID, dto.ReviewResourceRequest{
		Status:       entity.ResourceStatusNecesitaCambios,
		Observations: "Falta el eslogan",
	})
	require.NoError(t, err)

	// Endurecer la decisión sobre el mismo recurso añade otra fila; no se
	// deduplica ni se reescribe la anterior.
	_, err = f.uc.ReviewResource(ctx, reviewer(), resourceID, dto.ReviewResourceRequest{
		Status:       entity.ResourceStatusRechazado,
		Observations: "Se rehace completo",
	})
	require.NoError(t, err)

	require.Len(t, f.history.entries, 2)
	assert.Equal(t, entity.ResourceStatusPendiente, f.history.entries[0].OldStatus)
	assert.Equal(t, entity.ResourceStatusNecesitaCambios, f.history.entries[0].NewStatus)
	assert.Equal(t, entity.ResourceStatusNecesitaCambios, f.history.entries[1].OldStatus)
	assert.Equal(t, entity.ResourceStatusRechazado, f.history.entries[1].NewStatus)

	// Cada decisión correctiva generó su propia tarea.
	assert.Len(t, f.tasks.created, 2)
}

func TestReviewResource_FalloEnCorreccionRevierteTodo(t *testing.T) {
	f := newReviewFixture(t)
	f.tasks.createErr = assert.AnError

	_, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
		Status:       entity.ResourceStatusRechazado,
		Observations: "No cumple el brief",
	})
	require.Error(t, err)

	// La transacción se revirtió: el recurso sigue pendiente y no hay
	// historial ni tarea ni notificación.
	assert.Equal(t, 1, f.tx.rollbacks)
	assert.Equal(t, entity.ResourceStatusPendiente, f.resources.resources[resourceID].Status)
	assert.Empty(t, f.history.entries)
	assert.Empty(t, f.tasks.created)
	assert.Empty(t, f.notifier.events)
}

func TestReviewResource_EstadoDeRevisionInvalido(t *testing.T) {
	f := newReviewFixture(t)

	for _, status := range []string{"", entity.ResourceStatusPendiente, "publicado"} {
		_, err := f.uc.ReviewResource(context.Background(), reviewer(), resourceID, dto.ReviewResourceRequest{
			Status: status,
		})
		ve, ok := domain.AsValidation(err)
		require.True(t, ok, "estado %q debe fallar la validación", status)
		assert.Contains(t, ve.Fields, "status")
	}
}

func TestReviewResource_RecursoInexistente(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.uc.ReviewResource(context.Background(), reviewer(), "no-existe", dto.ReviewResourceRequest{
		Status: entity.ResourceStatusAprobado,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
