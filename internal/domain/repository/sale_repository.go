package repository

import "github.com/tu-usuario/ventasly/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Toda lectura y mutación va acotada por el dueño (ownerID): una venta de
// otro usuario es indistinguible de una que no existe.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// ListByOwner devuelve las ventas del dueño ordenadas por Date descendente.
	ListByOwner(ownerID string) ([]*entity.Sale, error)
	// GetByIDAndOwner devuelve (nil, nil) si la venta no existe o no pertenece al dueño.
	GetByIDAndOwner(id, ownerID string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	// Delete devuelve true si se eliminó una fila del dueño indicado.
	Delete(id, ownerID string) (bool, error)
}
