package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Solo la capa HTTP los traduce a códigos de estado.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("usuario o email ya registrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
