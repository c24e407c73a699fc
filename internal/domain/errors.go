package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// El motor de finance nunca produce errores: los datos malos se excluyen en
// silencio. Estos sentinelas los usan los casos de uso y los handlers para el
// contorno de la API (conductor inexistente, rango de fechas inválido).
var (
	ErrDriverNotFound = errors.New("conductor no encontrado")
	ErrInvalidRange   = errors.New("rango de fechas inválido")
)
