package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInvalidRole: valor de rol fuera del conjunto cerrado {admin, supplier, pharmacist}.
	ErrInvalidRole = errors.New("rol inválido")
	// ErrInvalidTransition: cambio de estado de orden no permitido por la máquina de estados.
	ErrInvalidTransition = errors.New("transición de estado inválida")
	// ErrInvalidData: registro del snapshot con fecha o campo numérico malformado.
	ErrInvalidData = errors.New("dato de snapshot inválido")
)
