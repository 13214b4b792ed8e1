package entity

import "time"

// User representa un usuario interno (personal de AquaLife: admin, repartidor, etc.).
// A diferencia de Customer, estos perfiles se crean desde el panel de administración.
type User struct {
	ID        string
	Name      string
	Email     string
	Tipo      string // "admin", "usuario"
	Active    bool
	CreatedAt time.Time
}
