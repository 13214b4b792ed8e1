package repository

import (
	"context"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// ConfigRepository define el puerto de persistencia para la configuración global.
type ConfigRepository interface {
	// GetBotellonConfig devuelve la configuración de precios, o nil si no se ha fijado.
	GetBotellonConfig(ctx context.Context) (*entity.BotellonConfig, error)
	// UpdateBotellonConfig aplica los precios presentes (no nil) y registra el cambio en el historial.
	UpdateBotellonConfig(ctx context.Context, change *entity.PriceChange) error
	ListPriceHistory(ctx context.Context) ([]*entity.PriceChange, error)
}
