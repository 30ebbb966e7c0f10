package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de declaración de una venta. La transición es de un solo sentido:
// Draft → Declared, y Declared es terminal.
const (
	DecStatusDraft    = 1
	DecStatusDeclared = 2
)

// Sale representa una venta registrada por un usuario.
type Sale struct {
	ID            string
	UserID        string // dueño; nunca se reasigna después de crear
	Product       string
	Quantity      int
	SalePrice     decimal.Decimal
	UnitCost      decimal.Decimal
	Margin        decimal.Decimal // derivado, ver ComputeMargin
	PaymentStatus string          // etiqueta libre suministrada por el dueño
	DecStatus     int
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ComputeMargin recalcula el margen: (SalePrice - UnitCost) * Quantity.
// Se invoca en cada create/update; el margen nunca lo suministra el caller.
func (s *Sale) ComputeMargin() {
	s.Margin = s.SalePrice.Sub(s.UnitCost).Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Declare marca la venta como declarada. Es idempotente: declarar dos veces
// deja el mismo estado terminal.
func (s *Sale) Declare() {
	s.DecStatus = DecStatusDeclared
}
