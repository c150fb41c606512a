package dto

import "time"

// ErrorResponse cuerpo de error HTTP. Fields lleva los mensajes por campo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuditLogResponse entrada del log tal como la expone la API.
type AuditLogResponse struct {
	Detail string    `json:"detalle"`
	Date   time.Time `json:"fecha"`
}
