package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventasly/internal/application/dto"
	"github.com/tu-usuario/ventasly/internal/domain"
	"github.com/tu-usuario/ventasly/internal/domain/entity"
	"github.com/tu-usuario/ventasly/internal/domain/repository"
)

// ReportGenerator puerto para producir el reporte PDF de ventas de un dueño.
type ReportGenerator interface {
	GenerateSalesReport(ownerEmail string, salesList []*entity.Sale) ([]byte, error)
}

// SaleUseCase operaciones sobre ventas, siempre acotadas por dueño. El ownerID
// viene exclusivamente de la identidad resuelta por el middleware de auth,
// nunca del cuerpo de la petición.
type SaleUseCase struct {
	sales  repository.SaleRepository
	report ReportGenerator
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(salesRepo repository.SaleRepository, report ReportGenerator) *SaleUseCase {
	return &SaleUseCase{sales: salesRepo, report: report}
}

// List devuelve las ventas del dueño ordenadas por fecha descendente.
func (uc *SaleUseCase) List(ownerID string) ([]dto.SaleResponse, error) {
	list, err := uc.sales.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *dto.ToSaleResponse(s))
	}
	return out, nil
}

// Create valida la entrada, deriva el margen y persiste la venta en estado
// Draft. La fecha por defecto es el momento de creación.
func (uc *SaleUseCase) Create(ownerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	// salePrice y unitCost son obligatorios: ausentes no equivale a cero.
	if in.SalePrice == nil || in.UnitCost == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := validateAmounts(in.Quantity, *in.SalePrice, *in.UnitCost); err != nil {
		return nil, err
	}
	if in.Product == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        ownerID,
		Product:       in.Product,
		Quantity:      in.Quantity,
		SalePrice:     *in.SalePrice,
		UnitCost:      *in.UnitCost,
		PaymentStatus: in.PaymentStatus,
		DecStatus:     entity.DecStatusDraft,
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sale.ComputeMargin()
	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(sale), nil
}

// Update fusiona los campos recibidos sobre la venta existente y recalcula el
// margen. Devuelve (nil, nil) si la venta no existe o pertenece a otro dueño;
// ni UserID ni DecStatus son modificables por esta vía.
func (uc *SaleUseCase) Update(ownerID, saleID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByIDAndOwner(saleID, ownerID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if in.Product != nil {
		sale.Product = *in.Product
	}
	if in.Quantity != nil {
		sale.Quantity = *in.Quantity
	}
	if in.SalePrice != nil {
		sale.SalePrice = *in.SalePrice
	}
	if in.UnitCost != nil {
		sale.UnitCost = *in.UnitCost
	}
	if in.PaymentStatus != nil {
		sale.PaymentStatus = *in.PaymentStatus
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}
	if err := validateAmounts(sale.Quantity, sale.SalePrice, sale.UnitCost); err != nil {
		return nil, err
	}
	if sale.Product == "" {
		return nil, domain.ErrInvalidInput
	}
	sale.ComputeMargin()
	sale.UpdatedAt = time.Now()
	if err := uc.sales.Update(sale); err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(sale), nil
}

// AdvanceDeclaration marca la venta como declarada. La operación es
// incondicional e idempotente: una venta ya declarada se queda declarada.
// Devuelve (nil, nil) si la venta no existe o pertenece a otro dueño.
func (uc *SaleUseCase) AdvanceDeclaration(ownerID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByIDAndOwner(saleID, ownerID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	sale.Declare()
	sale.UpdatedAt = time.Now()
	if err := uc.sales.Update(sale); err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(sale), nil
}

// Delete elimina la venta del dueño. Devuelve false si no había nada que borrar.
func (uc *SaleUseCase) Delete(ownerID, saleID string) (bool, error) {
	return uc.sales.Delete(saleID, ownerID)
}

// Report genera el PDF con las ventas del dueño.
func (uc *SaleUseCase) Report(ownerID, ownerEmail string) ([]byte, error) {
	list, err := uc.sales.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateSalesReport(ownerEmail, list)
}

func validateAmounts(quantity int, salePrice, unitCost decimal.Decimal) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if salePrice.IsNegative() || unitCost.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}
