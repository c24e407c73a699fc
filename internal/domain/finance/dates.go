package finance

import "time"

// Formatos de fecha aceptados, en el orden en que los escribe el POS.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate interpreta una fecha en texto ISO de forma tolerante.
// ok = false si viene vacía o no coincide con ningún formato conocido; el
// registro dueño de la fecha simplemente queda fuera de la ventana del reporte.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateRange ventana inclusiva a granularidad de día: [inicio de From, fin de To].
type DateRange struct {
	From time.Time // 00:00:00.000 del primer día
	To   time.Time // 23:59:59.999… del último día
}

// NewDateRange normaliza un rango al día completo en la zona horaria de from/to.
func NewDateRange(from, to time.Time) DateRange {
	start := startOfDay(from)
	end := startOfDay(to).Add(24*time.Hour - time.Nanosecond)
	return DateRange{From: start, To: end}
}

// Contains indica si t cae dentro de la ventana (extremos inclusive).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
