package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BotellonConfig precio global del botellón (tarifa estándar y tarifa alta).
// Existe a lo sumo una fila; los cambios dejan rastro en el historial de precios.
type BotellonConfig struct {
	Price     decimal.Decimal
	PriceHigh decimal.Decimal
	UpdatedAt time.Time
}

// PriceChange entrada del historial de cambios de precio: qué cambió y quién lo hizo.
type PriceChange struct {
	ID        string
	Price     *decimal.Decimal // nil si no se cambió en este evento
	PriceHigh *decimal.Decimal
	UserID    string
	UserName  string
	ChangedAt time.Time
}
