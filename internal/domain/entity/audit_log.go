package entity

import "time"

// Acciones normalizadas del log de auditoría.
const (
	AuditCreate = "create"
	AuditRead   = "read"
	AuditUpdate = "update"
	AuditDelete = "delete"
	AuditExport = "export"
)

// AuditLog entrada append-only del registro de acciones.
type AuditLog struct {
	ID        string
	UserID    string // vacío si no se conoce el actor
	Module    string
	Action    string
	Detail    string
	CreatedAt time.Time
}
