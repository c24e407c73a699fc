package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// SaleRepository acceso de solo lectura a los recibos de venta del POS.
//
// El rango es un pre-filtro grueso de la consulta; el filtrado autoritativo
// (estados, fechas malformadas, preferencia de fecha de entrega) vive en el
// motor de finance.
type SaleRepository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
}
