package entity

import "time"

// Role es el rol de un usuario. Enumeración cerrada: ADMIN o CUSTOMER.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User representa un usuario de la tienda (cliente o administrador).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
