package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// ServiceOrderRepository acceso de solo lectura a las órdenes de servicio.
//
// El pre-filtro en SQL compara el prefijo de día de la fecha contable de cada
// orden (fecha de entrega si existe, si no la fecha de servicio); el corte
// fino y la exclusión de fechas malformadas quedan a cargo del motor.
type ServiceOrderRepository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.ServiceOrder, error)
}
