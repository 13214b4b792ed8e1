package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BotellonConfigResponse precios globales del botellón.
type BotellonConfigResponse struct {
	Price     *decimal.Decimal `json:"precio"`      // nil si no se ha fijado
	PriceHigh *decimal.Decimal `json:"precio_alto"` // tarifa alta (intercambio)
	UpdatedAt *time.Time       `json:"updated_at"`
}

// UpdateBotellonConfigRequest actualización parcial de precios: solo los
// campos presentes se aplican; cada cambio queda en el historial.
type UpdateBotellonConfigRequest struct {
	Price     *decimal.Decimal `json:"precio"`
	PriceHigh *decimal.Decimal `json:"precio_alto"`
}

// PriceChangeResponse entrada del historial de cambios de precio.
type PriceChangeResponse struct {
	ID        string           `json:"id"`
	Price     *decimal.Decimal `json:"precio,omitempty"`
	PriceHigh *decimal.Decimal `json:"precio_alto,omitempty"`
	UserID    string           `json:"user_id"`
	UserName  string           `json:"user_nombre,omitempty"`
	ChangedAt time.Time        `json:"fecha"`
}
