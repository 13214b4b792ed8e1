package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

// ConfigUseCase gestiona el precio global del botellón y su historial.
type ConfigUseCase struct {
	configRepo repository.ConfigRepository
	userRepo   repository.UserRepository
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(configRepo repository.ConfigRepository, userRepo repository.UserRepository) *ConfigUseCase {
	return &ConfigUseCase{configRepo: configRepo, userRepo: userRepo}
}

// GetBotellonConfig devuelve los precios globales actuales.
func (uc *ConfigUseCase) GetBotellonConfig(ctx context.Context) (*dto.BotellonConfigResponse, error) {
	cfg, err := uc.configRepo.GetBotellonConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &dto.BotellonConfigResponse{}, nil
	}
	price := cfg.Price
	priceHigh := cfg.PriceHigh
	updatedAt := cfg.UpdatedAt
	return &dto.BotellonConfigResponse{
		Price:     &price,
		PriceHigh: &priceHigh,
		UpdatedAt: &updatedAt,
	}, nil
}

// UpdateBotellonConfig aplica los precios presentes en la petición y registra
// quién hizo el cambio en el historial. Rechaza precios no positivos.
func (uc *ConfigUseCase) UpdateBotellonConfig(ctx context.Context, userID string, in dto.UpdateBotellonConfigRequest) error {
	if in.Price == nil && in.PriceHigh == nil {
		return domain.NewValidationError("Ingresa un precio válido.")
	}
	if in.Price != nil && in.Price.Sign() <= 0 {
		return domain.NewValidationError("El precio debe ser mayor a 0.")
	}
	if in.PriceHigh != nil && in.PriceHigh.Sign() <= 0 {
		return domain.NewValidationError("El precio alto debe ser mayor a 0.")
	}

	var userName string
	if user, err := uc.userRepo.GetByID(ctx, userID); err == nil && user != nil {
		userName = user.Name
	}

	change := &entity.PriceChange{
		ID:        uuid.New().String(),
		Price:     in.Price,
		PriceHigh: in.PriceHigh,
		UserID:    userID,
		UserName:  userName,
		ChangedAt: time.Now(),
	}
	return uc.configRepo.UpdateBotellonConfig(ctx, change)
}

// ListPriceHistory devuelve el historial de cambios de precio, más reciente primero.
func (uc *ConfigUseCase) ListPriceHistory(ctx context.Context) ([]dto.PriceChangeResponse, error) {
	changes, err := uc.configRepo.ListPriceHistory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceChangeResponse, 0, len(changes))
	for _, ch := range changes {
		out = append(out, dto.PriceChangeResponse{
			ID:        ch.ID,
			Price:     ch.Price,
			PriceHigh: ch.PriceHigh,
			UserID:    ch.UserID,
			UserName:  ch.UserName,
			ChangedAt: ch.ChangedAt,
		})
	}
	return out, nil
}
