package entity

import "time"

// Tipos de perfil.
const (
	TipoCliente = "cliente"
	TipoAdmin   = "admin"
	TipoUsuario = "usuario"
)

// Customer representa el perfil de un cliente de AquaLife.
// El ID es el identificador de la cuenta en el servicio de identidad.
type Customer struct {
	ID        string
	Name      string
	Cedula    int64 // cédula de identidad, única por cliente
	Phone     string
	Address   string
	Email     string
	Tipo      string // siempre "cliente" para perfiles creados por registro
	Active    bool
	CreatedAt time.Time
}
