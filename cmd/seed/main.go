// seed crea el esquema de la base de datos y los datos iniciales:
// el usuario administrador y los precios por defecto del botellón.
//
// Uso: go run ./cmd/seed
// Lee la configuración igual que el API (DATABASE_URL o DB_*).
// Idempotente: todas las sentencias usan IF NOT EXISTS / ON CONFLICT.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/infrastructure/postgres"
	"github.com/aqualife/aqualife-api/pkg/config"
	"github.com/aqualife/aqualife-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS cuentas (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS clientes (
	id         UUID PRIMARY KEY,
	nombre     TEXT NOT NULL,
	cedula     BIGINT NOT NULL UNIQUE,
	telefono   TEXT NOT NULL,
	direccion  TEXT NOT NULL,
	email      TEXT NOT NULL,
	tipo       TEXT NOT NULL DEFAULT 'cliente',
	activo     BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS usuarios (
	id         UUID PRIMARY KEY,
	nombre     TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	tipo       TEXT NOT NULL DEFAULT 'usuario',
	activo     BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS pedidos (
	id                UUID PRIMARY KEY,
	numero_pedido     BIGINT NOT NULL UNIQUE,
	cliente_id        UUID NOT NULL REFERENCES clientes(id),
	cliente_nombre    TEXT NOT NULL,
	tipo              TEXT NOT NULL,
	con_asa           INTEGER NOT NULL DEFAULT 0,
	sin_asa           INTEGER NOT NULL DEFAULT 0,
	total             NUMERIC(12,2) NOT NULL,
	estado            TEXT NOT NULL DEFAULT 'pendiente',
	estado_financiero TEXT NOT NULL DEFAULT 'por_cobrar',
	monto_cobrado     NUMERIC(12,2) NOT NULL DEFAULT 0,
	monto_pagado      NUMERIC(12,2) NOT NULL DEFAULT 0,
	fecha             TIMESTAMPTZ NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_pedidos_cliente ON pedidos (cliente_id);

CREATE TABLE IF NOT EXISTS contadores (
	nombre TEXT PRIMARY KEY,
	valor  BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS config_botellon (
	id          INTEGER PRIMARY KEY,
	precio      NUMERIC(12,2),
	precio_alto NUMERIC(12,2),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS config_botellon_historial (
	id          UUID PRIMARY KEY,
	precio      NUMERIC(12,2),
	precio_alto NUMERIC(12,2),
	user_id     TEXT NOT NULL,
	user_nombre TEXT,
	fecha       TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema creado")

	// Cuenta y perfil del administrador, en una sola transacción: una corrida
	// interrumpida no deja una cuenta sin perfil, y si ya hay cuenta pero falta
	// el perfil (corridas viejas), este se repone.
	adminEmail := "admin@aqualife.com"
	adminID := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte("Cambiar123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir transacción")
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO cuentas (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (email) DO NOTHING`,
		adminID, adminEmail, string(hash),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("crear cuenta admin")
	}
	if tag.RowsAffected() == 0 {
		// la cuenta ya existía: el perfil debe colgar de su id real
		if err := tx.QueryRow(ctx, `SELECT id FROM cuentas WHERE email = $1`, adminEmail).Scan(&adminID); err != nil {
			log.Fatal().Err(err).Msg("buscar cuenta admin")
		}
	}

	userRepo := postgres.NewUserRepository(tx)
	existing, err := userRepo.GetByID(ctx, adminID)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar perfil admin")
	}
	if existing == nil {
		admin := &entity.User{
			ID:        adminID,
			Name:      "Administrador",
			Email:     adminEmail,
			Tipo:      entity.TipoAdmin,
			Active:    true,
			CreatedAt: time.Now(),
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("crear perfil admin")
		}
		log.Info().Str("email", adminEmail).Msg("administrador creado (cambiar la contraseña)")
	} else {
		log.Info().Str("email", adminEmail).Msg("administrador ya existe")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("confirmar transacción")
	}

	// Contador de pedidos y precios por defecto del botellón.
	if _, err := pool.Exec(ctx, `
		INSERT INTO contadores (nombre, valor) VALUES ('pedidos', 0)
		ON CONFLICT (nombre) DO NOTHING`,
	); err != nil {
		log.Fatal().Err(err).Msg("inicializar contador de pedidos")
	}

	precio := decimal.NewFromInt(10000)
	precioAlto := decimal.NewFromInt(35000)
	if _, err := pool.Exec(ctx, `
		INSERT INTO config_botellon (id, precio, precio_alto, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO NOTHING`,
		precio, precioAlto,
	); err != nil {
		log.Fatal().Err(err).Msg("inicializar precios del botellón")
	}

	log.Info().Msg("datos iniciales listos")
}
