package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario individual del sistema.
type User struct {
	ID           string
	Email        string // único, sensible a mayúsculas tal como se almacena
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	HasPaid      bool   // lo escribe el colaborador de facturación; aquí solo lectura
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
