package dto

import "time"

// StockEntryRequest entrada de mercancía (movimiento de tipo entrada).
type StockEntryRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Reason    string `json:"reason" validate:"max=200"`
}

// MovementResponse fila del kardex con el stock resultante derivado.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	PriorStock   int       `json:"prior_stock"`
	CurrentStock int       `json:"current_stock"`
	Date         time.Time `json:"date"`
	Reason       string    `json:"reason"`
	UserID       string    `json:"user_id,omitempty"`
}
