package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes son aptos para mostrarse al usuario tal cual.
var (
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")

	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCategory    = errors.New("la categoría indicada no existe")
	ErrDuplicate          = errors.New("recurso duplicado")

	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrIdentity: el token era válido pero el sujeto ya no existe en la base
	// (token viejo o de otro entorno). Debe fallar antes de tocar cualquier servicio.
	ErrIdentity = errors.New("identidad del solicitante no resoluble")
)
