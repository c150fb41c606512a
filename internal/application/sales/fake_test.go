package sales_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// memState datos de la base en memoria.
type memState struct {
	products  map[string]entity.Product
	sales     map[string]entity.Sale
	lines     []entity.SaleLine
	movements []entity.StockMovement
}

func (s *memState) clone() *memState {
	c := &memState{
		products:  make(map[string]entity.Product, len(s.products)),
		sales:     make(map[string]entity.Sale, len(s.sales)),
		lines:     append([]entity.SaleLine(nil), s.lines...),
		movements: append([]entity.StockMovement(nil), s.movements...),
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	return c
}

// memStore TxRunner transaccional: serializa las transacciones con un mutex
// (equivalente a bloquear todas las filas) y solo publica los cambios si fn no falla.
type memStore struct {
	mu    sync.Mutex
	state *memState
}

func newMemStore(products ...entity.Product) *memStore {
	st := &memState{products: map[string]entity.Product{}, sales: map[string]entity.Sale{}}
	for _, p := range products {
		st.products[p.ID] = p
	}
	return &memStore{state: st}
}

func (m *memStore) RunSale(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := m.state.clone()
	if err := fn(&memMovementRepo{tx}, &memProductRepo{tx}, &memSaleRepo{tx}); err != nil {
		return err
	}
	m.state = tx
	return nil
}

func (m *memStore) snapshot() *memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

type memProductRepo struct{ st *memState }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.st.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cur := r.st.products[p.ID]
	q := cur.Quantity
	cur = *p
	cur.Quantity = q
	r.st.products[p.ID] = cur
	return nil
}

func (r *memProductRepo) SetQuantity(_ context.Context, id string, quantity int) error {
	p := r.st.products[id]
	p.Quantity = quantity
	r.st.products[id] = p
	return nil
}

func (r *memProductRepo) List(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.st.products))
	for _, p := range r.st.products {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, id string) error {
	p := r.st.products[id]
	p.Active = false
	r.st.products[id] = p
	return nil
}

type memSaleRepo struct{ st *memState }

func (r *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.st.sales[s.ID] = *s
	return nil
}

func (r *memSaleRepo) CreateLine(_ context.Context, l *entity.SaleLine) error {
	r.st.lines = append(r.st.lines, *l)
	return nil
}

func (r *memSaleRepo) UpdateTotal(_ context.Context, saleID string, total decimal.Decimal) error {
	s := r.st.sales[saleID]
	s.Total = total
	r.st.sales[saleID] = s
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := r.st.sales[id]
	if !ok {
		return nil, nil
	}
	s.Lines = nil
	for _, l := range r.st.lines {
		if l.SaleID == id {
			s.Lines = append(s.Lines, l)
		}
	}
	return &s, nil
}

func (r *memSaleRepo) List(ctx context.Context, _ repository.SaleFilter) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.st.sales))
	for id := range r.st.sales {
		s, _ := r.GetByID(ctx, id)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type memMovementRepo struct{ st *memState }

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.st.movements = append(r.st.movements, *m)
	return nil
}

func (r *memMovementRepo) List(context.Context, repository.MovementFilter) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, len(r.st.movements))
	for i := range r.st.movements {
		out = append(out, &r.st.movements[i])
	}
	return out, nil
}
