package repository

import (
	"context"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// StaffRepository acceso de solo lectura al personal para nómina y comisiones.
type StaffRepository interface {
	// ListActive devuelve el personal no archivado.
	ListActive(ctx context.Context) ([]entity.StaffMember, error)
}
