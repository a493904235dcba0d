package entity

import "time"

// Roles de usuario del back-office.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User usuario interno de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
