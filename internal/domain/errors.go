package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el correo ya está registrado")
	ErrCedulaAlreadyExists = errors.New("la cédula ya está registrada con otro usuario")
	ErrInvalidEmail        = errors.New("el formato del correo no es válido")
	ErrWeakPassword        = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrAccountSuspended    = errors.New("cuenta suspendida")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser mayor a 0")
	ErrInsufficientStock   = errors.New("la cantidad excede los botellones llenos disponibles")
)

// ValidationError error de validación de campo, corregible por el usuario.
// Lleva el mensaje exacto que se muestra al usuario; nunca se loguea como excepcional.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation indica si err es un error de validación de campo.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
