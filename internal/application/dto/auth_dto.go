package dto

import "time"

// RegisterRequest entrada del registro de clientes (pantalla "Crear una cuenta").
// Los campos de texto se normalizan (trim, email en minúsculas) antes de validar.
type RegisterRequest struct {
	Name            string `json:"nombre"`
	Cedula          string `json:"cedula"`
	Phone           string `json:"telefono"`
	Address         string `json:"direccion"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmar_password"`
}

// CustomerResponse salida de un perfil de cliente (sin credenciales).
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Cedula    int64     `json:"cedula"`
	Phone     string    `json:"telefono"`
	Address   string    `json:"direccion"`
	Email     string    `json:"email"`
	Tipo      string    `json:"tipo"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse perfil creado más el toast de confirmación.
type RegisterResponse struct {
	Customer     CustomerResponse `json:"cliente"`
	Notification Notification     `json:"notification"`
}

// PasswordStrengthResponse nivel de seguridad advisory de una contraseña.
// No bloquea el registro; la validación dura es independiente.
type PasswordStrengthResponse struct {
	Score int    `json:"score"` // 0..5
	Level string `json:"level"` // "", "Débil", "Media", "Fuerte"
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos básicos del perfil autenticado.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Tipo  string `json:"tipo"` // cliente, admin, usuario
}
