package inventory

import (
	"sync"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// Service mantiene un Ledger por usuario autenticado. Cada sesión opera sus
// contadores de a una operación a la vez; el mutex protege el registro y
// serializa las mutaciones que el servidor HTTP pueda recibir en paralelo.
type Service struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
}

// NewService construye el servicio con el registro vacío.
func NewService() *Service {
	return &Service{ledgers: make(map[string]*Ledger)}
}

// ledgerFor devuelve el libro de la sesión, sembrándolo en el primer acceso.
// Llamar con mu tomado.
func (s *Service) ledgerFor(userID string) *Ledger {
	l, ok := s.ledgers[userID]
	if !ok {
		l = NewLedger()
		s.ledgers[userID] = l
	}
	return l
}

// State devuelve los contadores actuales de la sesión.
func (s *Service) State(userID string) dto.InventoryStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toStateResponse(s.ledgerFor(userID).State())
}

// History devuelve el historial de la sesión, más reciente primero.
func (s *Service) History(userID string) []dto.HistoryEntryResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.ledgerFor(userID).History()
	out := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Type:      e.Type,
			Details:   e.Details,
		})
	}
	return out
}

// AddStock ingresa botellones en la sesión indicada.
func (s *Service) AddStock(userID string, in dto.AddStockRequest) (*dto.InventoryMutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ledgerFor(userID)
	if err := l.AddStock(in.Quantity, in.IsFull); err != nil {
		return nil, err
	}
	return mutationResponse(l, "Stock actualizado."), nil
}

// UpdateCapsAndSeals añade tapas y/o precintos en la sesión indicada.
// La respuesta devuelve los campos del formulario en 0 siempre: se limpian
// después de cada envío, se hayan aplicado o no.
func (s *Service) UpdateCapsAndSeals(userID string, in dto.UpdateCapsSealsRequest) *dto.InventoryMutationResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ledgerFor(userID)
	l.UpdateCapsAndSeals(in.NewCaps, in.NewSeals)
	return mutationResponse(l, "Tapas y precintos actualizados.")
}

// RegisterMaintenance envía botellones llenos a mantenimiento en la sesión indicada.
func (s *Service) RegisterMaintenance(userID string, in dto.MaintenanceRequest) (*dto.InventoryMutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ledgerFor(userID)
	if err := l.RegisterMaintenance(in.Quantity); err != nil {
		return nil, err
	}
	return mutationResponse(l, "Botellones enviados a mantenimiento."), nil
}

func mutationResponse(l *Ledger, message string) *dto.InventoryMutationResponse {
	return &dto.InventoryMutationResponse{
		State:        toStateResponse(l.State()),
		Notification: dto.SuccessNotification(message),
	}
}

func toStateResponse(st entity.InventoryState) dto.InventoryStateResponse {
	return dto.InventoryStateResponse{
		FullBottles:        st.FullBottles,
		EmptyBottles:       st.EmptyBottles,
		MaintenanceBottles: st.MaintenanceBottles,
		Caps:               st.Caps,
		Seals:              st.Seals,
	}
}
