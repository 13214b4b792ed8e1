// Package inventory implementa el libro de inventario de sesión: contadores
// de botellones, tapas y precintos en memoria, con un historial inmutable de
// operaciones. No hay persistencia: el estado se pierde al cerrar la sesión.
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// Valores semilla con los que arranca cada sesión.
const (
	SeedFullBottles        = 100
	SeedEmptyBottles       = 50
	SeedMaintenanceBottles = 5
	SeedCaps               = 120
	SeedSeals              = 110
)

// Ledger contadores de inventario de una sesión más su historial.
// Las operaciones son atómicas: se aplican completas o se rechazan sin tocar
// el estado. El historial se ordena de más reciente a más antiguo.
//
// El Ledger no es seguro para uso concurrente; dentro de una sesión las
// operaciones llegan de a una. Service serializa el acceso entre sesiones.
type Ledger struct {
	state   entity.InventoryState
	history []entity.HistoryEntry
}

// NewLedger crea un libro con los valores semilla y el historial vacío.
func NewLedger() *Ledger {
	return &Ledger{
		state: entity.InventoryState{
			FullBottles:        SeedFullBottles,
			EmptyBottles:       SeedEmptyBottles,
			MaintenanceBottles: SeedMaintenanceBottles,
			Caps:               SeedCaps,
			Seals:              SeedSeals,
		},
	}
}

// State devuelve una copia de los contadores actuales.
func (l *Ledger) State() entity.InventoryState {
	return l.state
}

// History devuelve una copia del historial, más reciente primero.
func (l *Ledger) History() []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, len(l.history))
	copy(out, l.history)
	return out
}

// AddStock ingresa botellones. Con isFull=true suma llenos, tapas y precintos
// (una tapa y un precinto por botellón); con isFull=false suma vacíos.
// Cantidad no positiva se rechaza sin cambio de estado ni entrada de historial.
func (l *Ledger) AddStock(quantity int, isFull bool) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if isFull {
		l.state.FullBottles += quantity
		l.state.Caps += quantity
		l.state.Seals += quantity
		l.addHistory(entity.HistoryTypeIngreso,
			fmt.Sprintf("+%d botellones llenos, tapas y precintos.", quantity))
	} else {
		l.state.EmptyBottles += quantity
		l.addHistory(entity.HistoryTypeIngreso,
			fmt.Sprintf("+%d botellones vacíos.", quantity))
	}
	return nil
}

// UpdateCapsAndSeals añade tapas y/o precintos. Cada argumento se aplica de
// forma independiente solo si es mayor a 0, con su propia entrada de
// historial, así que una llamada puede generar 0, 1 o 2 entradas.
func (l *Ledger) UpdateCapsAndSeals(newCaps, newSeals int) {
	if newCaps > 0 {
		l.state.Caps += newCaps
		l.addHistory(entity.HistoryTypeActualizacion,
			fmt.Sprintf("+%d tapas añadidas.", newCaps))
	}
	if newSeals > 0 {
		l.state.Seals += newSeals
		l.addHistory(entity.HistoryTypeActualizacion,
			fmt.Sprintf("+%d precintos añadidos.", newSeals))
	}
}

// RegisterMaintenance traslada botellones llenos a mantenimiento. Se rechaza
// sin cambio de estado si la cantidad no es positiva o excede los llenos
// disponibles; los contadores nunca quedan negativos.
func (l *Ledger) RegisterMaintenance(quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if quantity > l.state.FullBottles {
		return domain.ErrInsufficientStock
	}
	l.state.FullBottles -= quantity
	l.state.MaintenanceBottles += quantity
	l.addHistory(entity.HistoryTypeMantenimiento,
		fmt.Sprintf("-%d botellones enviados a mantenimiento.", quantity))
	return nil
}

// addHistory crea la entrada y la antepone al historial. Es el único mutador
// del historial y siempre se invoca como último paso de una mutación exitosa.
func (l *Ledger) addHistory(opType, details string) {
	entry := entity.HistoryEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Type:      opType,
		Details:   details,
	}
	l.history = append([]entity.HistoryEntry{entry}, l.history...)
}
