package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementación de ConfigRepository sobre PostgreSQL.
// La configuración vive en una sola fila (id fijo); cada actualización deja
// su rastro en config_botellon_historial dentro de la misma transacción.
type ConfigRepo struct {
	pool *pgxpool.Pool
}

// NewConfigRepository construye el adaptador con el pool.
func NewConfigRepository(pool *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{pool: pool}
}

// GetBotellonConfig devuelve los precios globales, o nil si no se han fijado.
func (r *ConfigRepo) GetBotellonConfig(ctx context.Context) (*entity.BotellonConfig, error) {
	query := `SELECT precio, precio_alto, updated_at FROM config_botellon WHERE id = 1`
	var cfg entity.BotellonConfig
	err := r.pool.QueryRow(ctx, query).Scan(&cfg.Price, &cfg.PriceHigh, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config botellón: %w", err)
	}
	return &cfg, nil
}

// UpdateBotellonConfig aplica los precios presentes (merge parcial) y registra
// el cambio en el historial; upsert y rastro comparten transacción.
func (r *ConfigRepo) UpdateBotellonConfig(ctx context.Context, change *entity.PriceChange) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	upsert := `
		INSERT INTO config_botellon (id, precio, precio_alto, updated_at)
		VALUES (1, COALESCE($1, 0), COALESCE($2, 0), $3)
		ON CONFLICT (id) DO UPDATE SET
			precio      = COALESCE($1, config_botellon.precio),
			precio_alto = COALESCE($2, config_botellon.precio_alto),
			updated_at  = $3`
	if _, err := tx.Exec(ctx, upsert, change.Price, change.PriceHigh, change.ChangedAt); err != nil {
		return fmt.Errorf("upsert config botellón: %w", err)
	}

	hist := `
		INSERT INTO config_botellon_historial (id, precio, precio_alto, user_id, user_nombre, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, hist, change.ID, change.Price, change.PriceHigh, change.UserID, change.UserName, change.ChangedAt); err != nil {
		return fmt.Errorf("insert historial de precio: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListPriceHistory devuelve el historial de cambios, más reciente primero.
func (r *ConfigRepo) ListPriceHistory(ctx context.Context) ([]*entity.PriceChange, error) {
	query := `
		SELECT id, precio, precio_alto, user_id, user_nombre, fecha
		FROM config_botellon_historial ORDER BY fecha DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list historial de precio: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceChange
	for rows.Next() {
		var ch entity.PriceChange
		if err := rows.Scan(&ch.ID, &ch.Price, &ch.PriceHigh, &ch.UserID, &ch.UserName, &ch.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan historial de precio: %w", err)
		}
		list = append(list, &ch)
	}
	return list, rows.Err()
}
