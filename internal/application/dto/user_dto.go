package dto

import "time"

// CreateUserRequest entrada para crear un usuario interno desde el panel de
// administración. Crea la cuenta de identidad y el perfil en un solo paso.
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Tipo     string `json:"tipo"` // admin, usuario; por defecto usuario
}

// UpdateUserRequest campos editables de un usuario interno.
type UpdateUserRequest struct {
	Name string `json:"nombre"`
	Tipo string `json:"tipo"`
}

// UserResponse salida de un perfil de usuario interno (sin credenciales).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Tipo      string    `json:"tipo"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserResponse perfil creado más el toast de confirmación.
type CreateUserResponse struct {
	User         UserResponse `json:"usuario"`
	Notification Notification `json:"notification"`
}
