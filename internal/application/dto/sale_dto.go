package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventasly/internal/domain/entity"
)

// CreateSaleRequest entrada para crear una venta. Margin no se acepta del
// caller: siempre se deriva de precio, costo y cantidad. Los precios son
// punteros para distinguir "ausente" de cero: ambos son obligatorios.
type CreateSaleRequest struct {
	Product       string           `json:"product" validate:"required,min=1,max=200"`
	Quantity      int              `json:"quantity" validate:"required,gt=0"`
	SalePrice     *decimal.Decimal `json:"salePrice" validate:"required"`
	UnitCost      *decimal.Decimal `json:"unitCost" validate:"required"`
	PaymentStatus string           `json:"paymentStatus"`
	Date          *time.Time       `json:"date"` // opcional; por defecto ahora
}

// UpdateSaleRequest entrada para actualizar una venta. Campos nil se conservan.
// Ni el dueño ni el estado de declaración son modificables por esta vía.
type UpdateSaleRequest struct {
	Product       *string          `json:"product" validate:"omitempty,min=1,max=200"`
	Quantity      *int             `json:"quantity" validate:"omitempty,gt=0"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	UnitCost      *decimal.Decimal `json:"unitCost"`
	PaymentStatus *string          `json:"paymentStatus"`
	Date          *time.Time       `json:"date"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Product       string          `json:"product"`
	Quantity      int             `json:"quantity"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Margin        decimal.Decimal `json:"margin"`
	PaymentStatus string          `json:"paymentStatus"`
	DecStatus     int             `json:"decStatus"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToSaleResponse mapea la entidad a su vista externa.
func ToSaleResponse(s *entity.Sale) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Product:       s.Product,
		Quantity:      s.Quantity,
		SalePrice:     s.SalePrice,
		UnitCost:      s.UnitCost,
		Margin:        s.Margin,
		PaymentStatus: s.PaymentStatus,
		DecStatus:     s.DecStatus,
		Date:          s.Date,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
