package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/ventasly/internal/domain/entity"
	"github.com/tu-usuario/ventasly/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Todas las queries filtran por user_id: una venta ajena nunca sale de aquí.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

const saleColumns = `id, user_id, product, quantity, sale_price, unit_cost, margin, payment_status, dec_status, date, created_at, updated_at`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.Product, sale.Quantity, sale.SalePrice, sale.UnitCost,
		sale.Margin, sale.PaymentStatus, sale.DecStatus, sale.Date, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByOwner devuelve las ventas del dueño ordenadas por fecha descendente.
func (r *SaleRepo) ListByOwner(ownerID string) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByIDAndOwner devuelve (nil, nil) si la venta no existe o no pertenece al dueño.
func (r *SaleRepo) GetByIDAndOwner(id, ownerID string) (*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE id = $1 AND user_id = $2`
	row := r.pool.QueryRow(context.Background(), query, id, ownerID)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Update actualiza una venta existente, acotada por dueño. user_id nunca cambia.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET product = $3, quantity = $4, sale_price = $5, unit_cost = $6,
			margin = $7, payment_status = $8, dec_status = $9, date = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.Product, sale.Quantity, sale.SalePrice, sale.UnitCost,
		sale.Margin, sale.PaymentStatus, sale.DecStatus, sale.Date, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta del dueño. Devuelve true si se eliminó una fila.
func (r *SaleRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM sales WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.UserID, &s.Product, &s.Quantity, &s.SalePrice, &s.UnitCost,
		&s.Margin, &s.PaymentStatus, &s.DecStatus, &s.Date, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	return &s, nil
}
