package registration

import "context"

// IdentityService puerto hacia el servicio de identidad (cuentas y credenciales).
// CreateAccount devuelve el id de la cuenta creada, o uno de los errores de
// dominio: ErrEmailAlreadyExists, ErrInvalidEmail, ErrWeakPassword.
// Authenticate devuelve el id de la cuenta si las credenciales son válidas.
type IdentityService interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
}
