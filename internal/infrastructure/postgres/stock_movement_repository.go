package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo persistencia del kardex. Solo inserta y consulta: los movimientos no se editan.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (id, product_id, type, quantity, prior_stock, date, reason, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProductID, m.Type, m.Quantity, m.PriorStock, m.Date, m.Reason, nullIfEmpty(m.UserID),
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List movimientos filtrados en orden cronológico ascendente.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	var w whereBuilder
	if f.ProductID != "" {
		w.add("product_id = $%d", f.ProductID)
	}
	if f.From != nil {
		w.add("date >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("date <= $%d", *f.To)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, type, quantity, prior_stock, date, reason, user_id
		FROM stock_movements`+w.sql()+` ORDER BY date ASC, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var userID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PriorStock, &m.Date, &m.Reason, &userID); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.UserID = fromNull(userID)
		list = append(list, &m)
	}
	return list, rows.Err()
}
