package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeADD    = "ADD"    // entrada
	MovementTypeREMOVE = "REMOVE" // salida
)

// ValidMovementType indica si el tipo corresponde a un movimiento soportado.
func ValidMovementType(t string) bool {
	return t == MovementTypeADD || t == MovementTypeREMOVE
}

// StockMovement registro inmutable de un cambio de existencias y su causa.
// Append-only: se crea una vez por ajuste y nunca se modifica ni elimina.
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  int64  // estrictamente positiva; el signo lo da Type
	Type      string // ADD | REMOVE
	Notes     string
	UserID    string // usuario que ejecutó el ajuste (del token)
	CreatedAt time.Time
}
