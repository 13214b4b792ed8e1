package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
// Usa el pool directamente: Create necesita abrir su propia transacción para
// el número correlativo.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador con el pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, numero_pedido, cliente_id, cliente_nombre, tipo, con_asa, sin_asa,
		total, estado, estado_financiero, monto_cobrado, monto_pagado, fecha, created_at`

// Create persiste el pedido asignando el siguiente número correlativo dentro
// de una transacción: el contador se incrementa con SELECT ... FOR UPDATE, de
// modo que dos pedidos simultáneos nunca comparten número.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current int64
	err = tx.QueryRow(ctx, `SELECT valor FROM contadores WHERE nombre = 'pedidos' FOR UPDATE`).Scan(&current)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		current = 0
		if _, err := tx.Exec(ctx, `INSERT INTO contadores (nombre, valor) VALUES ('pedidos', 0)`); err != nil {
			return fmt.Errorf("crear contador de pedidos: %w", err)
		}
	case err != nil:
		return fmt.Errorf("leer contador de pedidos: %w", err)
	}
	o.NumeroPedido = current + 1
	if _, err := tx.Exec(ctx, `UPDATE contadores SET valor = $1 WHERE nombre = 'pedidos'`, o.NumeroPedido); err != nil {
		return fmt.Errorf("incrementar contador de pedidos: %w", err)
	}

	query := `
		INSERT INTO pedidos (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.Exec(ctx, query,
		o.ID, o.NumeroPedido, o.ClienteID, o.ClienteName, o.Tipo, o.WithHandle, o.WithoutHandle,
		o.Total, o.Estado, o.EstadoFinanciero, o.MontoCobrado, o.MontoPagado, o.Fecha, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID, o nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.NumeroPedido, &o.ClienteID, &o.ClienteName, &o.Tipo, &o.WithHandle, &o.WithoutHandle,
		&o.Total, &o.Estado, &o.EstadoFinanciero, &o.MontoCobrado, &o.MontoPagado, &o.Fecha, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &o, nil
}

// List devuelve todos los pedidos, más reciente primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos ORDER BY numero_pedido DESC`
	return r.queryMany(ctx, query)
}

// ListByCliente devuelve los pedidos de un cliente, más reciente primero.
func (r *OrderRepo) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos WHERE cliente_id = $1 ORDER BY numero_pedido DESC`
	return r.queryMany(ctx, query, clienteID)
}

// UpdateEstado cambia el estado operativo del pedido.
func (r *OrderRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE pedidos SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RegisterCharge marca el pedido como cobrado con el monto indicado.
func (r *OrderRepo) RegisterCharge(ctx context.Context, id string, monto decimal.Decimal) error {
	query := `UPDATE pedidos SET estado_financiero = $2, monto_cobrado = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, entity.FinanceCobrado, monto)
	if err != nil {
		return fmt.Errorf("registrar cobro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.NumeroPedido, &o.ClienteID, &o.ClienteName, &o.Tipo, &o.WithHandle, &o.WithoutHandle,
			&o.Total, &o.Estado, &o.EstadoFinanciero, &o.MontoCobrado, &o.MontoPagado, &o.Fecha, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
