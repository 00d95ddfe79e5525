package meal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/application/meal"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeMealRepo struct {
	created []*entity.Meal
	failErr error
}

func (f *fakeMealRepo) Create(m *entity.Meal) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMealRepo) ListByRange(context.Context, time.Time, time.Time, string) ([]*entity.MealTicket, error) {
	return nil, nil
}

func (f *fakeMealRepo) CountByTaxIDAndRange(context.Context, string, time.Time, time.Time) (int, int, error) {
	return 0, 0, nil
}

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) Create(*entity.Company) error              { return nil }
func (f *fakeCompanyRepo) GetByName(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)  { return nil, nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error              { return nil }
func (f *fakeCompanyRepo) Delete(string) error                       { return nil }

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}

type fakePrinter struct {
	printed []*entity.MealTicket
	failErr error
}

func (f *fakePrinter) PrintTicket(_ context.Context, t *entity.MealTicket) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.printed = append(f.printed, t)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_PersisteEImprime(t *testing.T) {
	repo := &fakeMealRepo{}
	printer := &fakePrinter{}
	company := &entity.Company{ID: "c1", Name: "Acme"}
	uc := meal.NewUseCase(repo, &fakeCompanyRepo{company: company}, printer, testLogger())

	out, err := uc.Register(context.Background(), dto.CreateMealRequest{
		Name: "Carlos Lima", CompanyID: "c1", TaxID: "12345678901", Type: entity.MealLunch,
	})
	require.NoError(t, err)

	assert.True(t, out.Printed)
	require.Len(t, repo.created, 1)
	require.Len(t, printer.printed, 1)
	assert.Equal(t, "Acme", printer.printed[0].CompanyName, "el ticket lleva el nombre de la empresa")
	assert.Equal(t, entity.MealLunch, printer.printed[0].Type)
}

func TestRegister_FalloDeImpresionNoRevierteElRegistro(t *testing.T) {
	repo := &fakeMealRepo{}
	printer := &fakePrinter{failErr: errors.New("impresora sin papel")}
	company := &entity.Company{ID: "c1", Name: "Acme"}
	uc := meal.NewUseCase(repo, &fakeCompanyRepo{company: company}, printer, testLogger())

	out, err := uc.Register(context.Background(), dto.CreateMealRequest{
		Name: "Carlos Lima", CompanyID: "c1", Type: entity.MealDinner,
	})
	require.NoError(t, err, "un fallo de impresión no es un error de la operación")

	assert.False(t, out.Printed, "la respuesta reporta que el ticket no salió")
	assert.Len(t, repo.created, 1, "el consumo queda registrado igual")
}

func TestRegister_EmpresaInexistenteDevuelveNotFound(t *testing.T) {
	uc := meal.NewUseCase(&fakeMealRepo{}, &fakeCompanyRepo{}, &fakePrinter{}, testLogger())

	_, err := uc.Register(context.Background(), dto.CreateMealRequest{
		Name: "Carlos Lima", CompanyID: "no-existe", Type: entity.MealLunch,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_FalloDePersistenciaNoImprime(t *testing.T) {
	repo := &fakeMealRepo{failErr: errors.New("db caída")}
	printer := &fakePrinter{}
	company := &entity.Company{ID: "c1", Name: "Acme"}
	uc := meal.NewUseCase(repo, &fakeCompanyRepo{company: company}, printer, testLogger())

	_, err := uc.Register(context.Background(), dto.CreateMealRequest{
		Name: "Carlos Lima", CompanyID: "c1", Type: entity.MealLunch,
	})
	require.Error(t, err)
	assert.Empty(t, printer.printed, "sin registro no hay ticket")
}
