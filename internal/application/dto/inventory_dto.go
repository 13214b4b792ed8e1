package dto

import "time"

// AddStockRequest entrada para ingresar botellones al inventario de la sesión.
type AddStockRequest struct {
	Quantity int  `json:"cantidad"`
	IsFull   bool `json:"llenos"` // true: llenos (+tapas y precintos), false: vacíos
}

// UpdateCapsSealsRequest entrada para añadir tapas y/o precintos.
// Cada campo se aplica de forma independiente solo si es mayor a 0.
type UpdateCapsSealsRequest struct {
	NewCaps  int `json:"nuevas_tapas"`
	NewSeals int `json:"nuevos_precintos"`
}

// MaintenanceRequest entrada para enviar botellones llenos a mantenimiento.
type MaintenanceRequest struct {
	Quantity int `json:"cantidad"`
}

// InventoryStateResponse contadores actuales de la sesión.
type InventoryStateResponse struct {
	FullBottles        int `json:"botellones_llenos"`
	EmptyBottles       int `json:"botellones_vacios"`
	MaintenanceBottles int `json:"botellones_mantenimiento"`
	Caps               int `json:"tapas"`
	Seals              int `json:"precintos"`
}

// HistoryEntryResponse una entrada del historial de inventario.
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"fecha"`
	Type      string    `json:"operacion"`
	Details   string    `json:"detalles"`
}

// InventoryMutationResponse estado resultante tras una operación, más el toast.
// NewCaps/NewSeals vuelven siempre en 0: el formulario de tapas y precintos se
// limpia después de cada envío, se hayan aplicado o no.
type InventoryMutationResponse struct {
	State        InventoryStateResponse `json:"inventario"`
	NewCaps      int                    `json:"nuevas_tapas"`
	NewSeals     int                    `json:"nuevos_precintos"`
	Notification Notification           `json:"notification"`
}
