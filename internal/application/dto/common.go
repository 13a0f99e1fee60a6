package dto

// ErrorResponse cuerpo de error HTTP.
// Error solo se llena en 5xx con el detalle técnico (herramienta interna; ver notas de diseño).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse respuesta mínima de confirmación para operaciones sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}
