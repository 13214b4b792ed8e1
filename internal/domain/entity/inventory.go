package entity

import "time"

// Tipos de operación del historial de inventario.
const (
	HistoryTypeIngreso       = "Ingreso"
	HistoryTypeActualizacion = "Actualización"
	HistoryTypeMantenimiento = "Mantenimiento"
)

// InventoryState contadores de inventario de una sesión.
// Se siembran con valores fijos al abrir la sesión y viven solo en memoria.
type InventoryState struct {
	FullBottles        int
	EmptyBottles       int
	MaintenanceBottles int
	Caps               int
	Seals              int
}

// HistoryEntry registro inmutable de una mutación de inventario.
// Se crea exactamente una vez por mutación exitosa y nunca se modifica.
type HistoryEntry struct {
	ID        string
	Timestamp time.Time
	Type      string // Ingreso, Actualización, Mantenimiento
	Details   string
}
