package orders

import (
	"context"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// ReceiptPDFGenerator puerto hacia el generador del comprobante en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, customer *entity.Customer) ([]byte, error)
}
