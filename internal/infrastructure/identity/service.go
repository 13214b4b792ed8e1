// Package identity implementa el servicio de identidad sobre PostgreSQL:
// cuentas con email único y hash bcrypt de la contraseña. Reproduce la
// taxonomía de errores del proveedor de identidad de la app (email en uso,
// email inválido, contraseña débil = menos de 6 caracteres).
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/aqualife/aqualife-api/internal/application/registration"
	"github.com/aqualife/aqualife-api/internal/domain"
)

var _ registration.IdentityService = (*Service)(nil)

// minPasswordLen umbral del proveedor: por debajo el registro falla con
// "contraseña débil". La política dura del formulario es más estricta.
const minPasswordLen = 6

// Service servicio de identidad respaldado por la tabla cuentas.
type Service struct {
	pool *pgxpool.Pool
}

// NewService construye el servicio con el pool.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// CreateAccount crea una cuenta y devuelve su id.
func (s *Service) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if !strings.Contains(email, "@") {
		return "", domain.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return "", domain.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	id := uuid.New().String()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO cuentas (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		id, email, string(hash), time.Now(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("insert cuenta: %w", err)
	}
	return id, nil
}

// Authenticate verifica email y contraseña y devuelve el id de la cuenta.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var (
		id   string
		hash string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, password_hash FROM cuentas WHERE email = $1`, email,
	).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("get cuenta: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
