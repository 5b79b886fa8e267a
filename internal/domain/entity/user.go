package entity

import "time"

// User representa un usuario del sistema. La identidad es opaca; los roles
// viven en la tabla user_roles (relación muchos-a-muchos) y se resuelven aparte.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithRoles perfil resuelto con su conjunto de roles (cero o más).
type UserWithRoles struct {
	User
	Roles []Role
}
