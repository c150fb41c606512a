package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/application/inventory"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

type stubProducts struct {
	repository.ProductRepository
	items map[string]*entity.Product
}

func (s *stubProducts) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *stubProducts) SetQuantity(_ context.Context, id string, q int) error {
	s.items[id].Quantity = q
	return nil
}

type stubMovements struct {
	created []*entity.StockMovement
	err     error
}

func (s *stubMovements) Create(_ context.Context, m *entity.StockMovement) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, m)
	return nil
}

func (s *stubMovements) List(_ context.Context, _ repository.MovementFilter) ([]*entity.StockMovement, error) {
	return s.created, nil
}

type stubTx struct {
	movs     *stubMovements
	products *stubProducts
}

func (s stubTx) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.ProductRepository) error) error {
	return fn(s.movs, s.products)
}

func TestRegisterEntry_SumaStockYRegistraEntrada(t *testing.T) {
	products := &stubProducts{items: map[string]*entity.Product{"p1": {ID: "p1", Name: "Arroz", Quantity: 4}}}
	movs := &stubMovements{}
	uc := inventory.NewRegisterMovementUseCase(stubTx{movs, products}, nil)

	mov, err := uc.RegisterEntry(context.Background(), entity.Actor{UserID: "u1"}, inventory.EntryInput{ProductID: "p1", Quantity: 6, Reason: " compra "})
	require.NoError(t, err)
	assert.Equal(t, 10, products.items["p1"].Quantity)
	assert.Equal(t, entity.MovementIn, mov.Type)
	assert.Equal(t, 4, mov.PriorStock)
	assert.Equal(t, 10, mov.CurrentStock())
	assert.Equal(t, "compra", mov.Reason)
	assert.Equal(t, "u1", mov.UserID)
	assert.Len(t, movs.created, 1)
}

func TestRegisterEntry_Errores(t *testing.T) {
	products := &stubProducts{items: map[string]*entity.Product{}}
	uc := inventory.NewRegisterMovementUseCase(stubTx{&stubMovements{}, products}, nil)

	_, err := uc.RegisterEntry(context.Background(), entity.Actor{}, inventory.EntryInput{ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterEntry(context.Background(), entity.Actor{}, inventory.EntryInput{ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRegisterOutInTx(t *testing.T) {
	products := &stubProducts{items: map[string]*entity.Product{"p1": {ID: "p1", Name: "Sal", SKU: "S1", Quantity: 2}}}
	movs := &stubMovements{}
	uc := inventory.NewRegisterMovementUseCase(nil, nil)
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	p, _ := products.GetForUpdate(context.Background(), "p1")
	_, err := uc.RegisterOutInTx(context.Background(), movs, products, p, 3, when, entity.ReasonSale, "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "Sal (S1)")
	assert.Equal(t, 2, products.items["p1"].Quantity)
	assert.Empty(t, movs.created)

	mov, err := uc.RegisterOutInTx(context.Background(), movs, products, p, 2, when, entity.ReasonSale, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, products.items["p1"].Quantity)
	assert.Equal(t, 2, mov.PriorStock)
	assert.Equal(t, 0, mov.CurrentStock())
	assert.Equal(t, when, mov.Date)
}

func TestKardex_RangoInvalido(t *testing.T) {
	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := inventory.NewKardexUseCase(&stubMovements{}).QueryMovements(context.Background(), repository.MovementFilter{From: &from, To: &to})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "hasta")
}

func TestKardex_Query(t *testing.T) {
	movs := &stubMovements{created: []*entity.StockMovement{
		{ID: "m1", Type: entity.MovementIn, Quantity: 5, PriorStock: 2},
		{ID: "m2", Type: entity.MovementOut, Quantity: 3, PriorStock: 7},
	}}
	out, err := inventory.NewKardexUseCase(movs).Query(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 7, out[0].CurrentStock)
	assert.Equal(t, 4, out[1].CurrentStock)
}
