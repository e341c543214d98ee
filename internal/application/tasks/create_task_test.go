package tasks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un cliente activo con una marca, un servicio de catálogo y un
// precio pactado para un segundo servicio.
// ──────────────────────────────────────────────────────────────────────────────

const (
	clientID        = "cl-1"
	brandID         = "br-1"
	otherBrandID    = "br-ajena"
	serviceID       = "sv-1"
	pactadoServID   = "sv-pactado"
	directorActorID = "co-dir"
)

type fixture struct {
	uc        *tasks.CreateTaskUseCase
	taskRepo  *fakeTaskRepo
	tx        *fakeTaskTx
	clientRpo *fakeClientRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	taskRepo := newFakeTaskRepo()
	tx := &fakeTaskTx{repo: taskRepo}
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		clientID: {ID: clientID, Name: "Café Andino", Status: entity.ClientStatusActivo, Plan: entity.PlanBasic},
	}}
	brandRepo := &fakeBrandRepo{brands: map[string]*entity.Brand{
		brandID:      {ID: brandID, ClientID: clientID, Name: "Andino Tienda"},
		otherBrandID: {ID: otherBrandID, ClientID: "cl-otro", Name: "Marca Ajena"},
	}}
	serviceRepo := &fakeServiceRepo{services: map[string]*entity.Service{
		serviceID:     {ID: serviceID, Name: "Post para redes", BasePrice: mustDecimal("80000"), Active: true},
		pactadoServID: {ID: pactadoServID, Name: "Reel", BasePrice: mustDecimal("250000"), Active: true},
	}}
	overrideRepo := &fakeOverrideRepo{overrides: map[string]*entity.PriceOverride{
		overrideKey(clientID, pactadoServID): {ClientID: clientID, ServiceID: pactadoServID, Price: mustDecimal("199000")},
	}}

	perm := permission.NewChecker(permission.DefaultMatrix(), nil)
	uc := tasks.NewCreateTaskUseCase(tx, taskRepo, clientRepo, brandRepo, serviceRepo, overrideRepo, perm, nil)
	return &fixture{uc: uc, taskRepo: taskRepo, tx: tx, clientRpo: clientRepo}
}

func director() dto.Actor {
	return dto.Actor{ID: directorActorID, Email: "dir@agencia.co", Role: entity.RoleDirector}
}

func validRequest() dto.CreateTaskRequest {
	return dto.CreateTaskRequest{
		ClientID:    clientID,
		BrandID:     brandID,
		ServiceID:   serviceID,
		Title:       "Campaña de marzo",
		DueDate:     fixedDate(20),
		RequestDate: fixedDate(10),
	}
}

func TestCreateTask_OperadorDenegado(t *testing.T) {
	f := newFixture(t)
	operador := dto.Actor{ID: "co-op", Email: "op@agencia.co", Role: entity.RoleOperador}

	_, err := f.uc.CreateTask(context.Background(), operador, validRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden, "operador no tiene createTasks")
	assert.Empty(t, f.taskRepo.created, "no debe persistirse nada")
}

func TestCreateTask_SuperAdminSaltaLaMatriz(t *testing.T) {
	f := newFixture(t)
	freelance := dto.Actor{ID: "co-fl", Email: "fl@agencia.co", Role: entity.RoleFreelance, SuperAdmin: true}

	resp, err := f.uc.CreateTask(context.Background(), freelance, validRequest())
	require.NoError(t, err, "la bandera super_admin concede createTasks")
	assert.Equal(t, entity.TaskStatusEnFila, resp.Status)
}

func TestCreateTask_AcumulaTodasLasViolaciones(t *testing.T) {
	f := newFixture(t)

	// Petición casi vacía: cada campo faltante debe aparecer en Fields,
	// todos a la vez y no solo el primero.
	_, err := f.uc.CreateTask(context.Background(), director(), dto.CreateTaskRequest{CustomPrice: true})
	require.Error(t, err)

	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "debe ser un ValidationError")
	for _, field := range []string{"client_id", "brand_id", "title", "service_id", "due_date", "price"} {
		assert.Contains(t, ve.Fields, field, "falta la violación de %s", field)
	}
	assert.Empty(t, f.taskRepo.created)
}

func TestCreateTask_FechaDeEntregaEstrictamentePosterior(t *testing.T) {
	f := newFixture(t)

	// due_date == request_date no alcanza: la regla es estrictamente posterior.
	req := validRequest()
	req.DueDate = req.RequestDate

	_, err := f.uc.CreateTask(context.Background(), director(), req)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "due_date")
}

func TestCreateTask_MarcaDeOtroCliente(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.BrandID = otherBrandID

	_, err := f.uc.CreateTask(context.Background(), director(), req)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "brand_id")
}

func TestCreateTask_LimiteDelPlanEnElBorde(t *testing.T) {
	f := newFixture(t)

	// Plan basic: 50 activas. Con 49 todavía entra; con 50 ya no.
	f.taskRepo.activeCount = 49
	_, err := f.uc.CreateTask(context.Background(), director(), validRequest())
	require.NoError(t, err, "con 49 activas la tarea 50 todavía cabe")

	f.taskRepo.activeCount = 50
	_, err = f.uc.CreateTask(context.Background(), director(), validRequest())
	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "en el límite exacto debe rechazarse")
	assert.Contains(t, ve.Fields, "task_limit")
}

func TestCreateTask_PlanPremiumSubeElLimite(t *testing.T) {
	f := newFixture(t)
	f.clientRpo.clients[clientID].Plan = entity.PlanPremium

	f.taskRepo.activeCount = 50
	_, err := f.uc.CreateTask(context.Background(), director(), validRequest())
	assert.NoError(t, err, "50 activas no llenan el plan premium")
}

func TestCreateTask_ResolucionDePrecio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Sin custom_price ni pactado: precio base del servicio.
	resp, err := f.uc.CreateTask(ctx, director(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(mustDecimal("80000")), "precio base, obtuvo %s", resp.Price)
	assert.False(t, resp.CustomPrice)

	// Con precio pactado para el servicio: gana el pactado.
	req := validRequest()
	req.ServiceID = pactadoServID
	resp, err = f.uc.CreateTask(ctx, director(), req)
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(mustDecimal("199000")), "precio pactado, obtuvo %s", resp.Price)

	// custom_price manda sobre todo lo demás.
	req = validRequest()
	req.ServiceID = pactadoServID
	req.CustomPrice = true
	req.Price = decimalPtr("500000")
	resp, err = f.uc.CreateTask(ctx, director(), req)
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(mustDecimal("500000")), "precio explícito, obtuvo %s", resp.Price)
	assert.True(t, resp.CustomPrice)
}

func TestCreateTask_EstadoInicialYAutor(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateTask(context.Background(), director(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusEnFila, resp.Status, "toda tarea nace en fila")
	assert.Equal(t, entity.TaskPriorityNormal, resp.Priority, "prioridad por defecto")
	require.Len(t, f.taskRepo.created, 1)
	assert.Equal(t, directorActorID, f.taskRepo.created[0].CreatedBy)
}

func TestCreateBulk_TodasONinguna(t *testing.T) {
	f := newFixture(t)

	// La segunda tarea es inválida: ninguna de las tres debe crearse.
	mala := validRequest()
	mala.Title = "   "
	_, err := f.uc.CreateBulk(context.Background(), director(), dto.BulkCreateTasksRequest{
		Tasks: []dto.CreateTaskRequest{validRequest(), mala, validRequest()},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tarea 1:", "el error señala la posición de la tarea inválida")
	assert.Empty(t, f.taskRepo.created)
	assert.Zero(t, f.tx.commits)

	// Lote válido: todas entran en una sola transacción.
	resps, err := f.uc.CreateBulk(context.Background(), director(), dto.BulkCreateTasksRequest{
		Tasks: []dto.CreateTaskRequest{validRequest(), validRequest()},
	})
	require.NoError(t, err)
	assert.Len(t, resps, 2)
	assert.Len(t, f.taskRepo.created, 2)
	assert.Equal(t, 1, f.tx.commits)
}

func TestCreateBulk_FalloDeEscrituraRevierte(t *testing.T) {
	f := newFixture(t)
	f.taskRepo.createErr = assert.AnError

	_, err := f.uc.CreateBulk(context.Background(), director(), dto.BulkCreateTasksRequest{
		Tasks: []dto.CreateTaskRequest{validRequest()},
	})
	require.Error(t, err)
	assert.Equal(t, 1, f.tx.rollbacks)
	assert.Empty(t, f.taskRepo.created)
}

func TestCreateBulk_LoteVacio(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateBulk(context.Background(), director(), dto.BulkCreateTasksRequest{})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "tasks")
}

func TestUpdateTask_NoAplicaLimiteDelPlan(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateTask(context.Background(), director(), validRequest())
	require.NoError(t, err)

	// La marca ya está al tope, pero editar no crea tareas nuevas.
	f.taskRepo.activeCount = 50
	titulo := "Campaña de marzo (v2)"
	updated, err := f.uc.UpdateTask(context.Background(), director(), resp.ID, dto.UpdateTaskRequest{Title: &titulo})
	require.NoError(t, err, "editar no pasa por el límite del plan")
	assert.Equal(t, titulo, updated.Title)
}

func TestUpdateTask_NoPermiteVaciarTitulo(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateTask(context.Background(), director(), validRequest())
	require.NoError(t, err)

	vacio := "  "
	_, err = f.uc.UpdateTask(context.Background(), director(), resp.ID, dto.UpdateTaskRequest{Title: &vacio})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "title")
}

func TestUpdateTask_TareaInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateTask(context.Background(), director(), "no-existe", dto.UpdateTaskRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
