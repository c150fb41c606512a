// Package audit alimenta y consulta el log de auditoría.
//
// Dos fuentes escriben en el mismo log: los casos de uso que modifican datos
// (RecordChange, con el actor explícito) y el middleware HTTP que clasifica
// cada petición al terminar (ClassifyRequest). Ambas son de mejor esfuerzo:
// un fallo al registrar se loguea y nunca se propaga al llamador.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
	"github.com/jhoicas/nova-inventario/pkg/logger"
)

// Nombres de módulo registrados por los hooks de cambios.
const (
	ModuleProduct   = "Producto"
	ModuleSale      = "Venta"
	ModuleUser      = "Usuario"
	ModuleRole      = "Rol"
	ModuleWarehouse = "Almacen"
	ModuleSupplier  = "Proveedor"
	ModuleCategory  = "Categoria"
	ModuleKardex    = "Kardex"
)

const writeTimeout = 3 * time.Second

// Recorder escribe entradas en el log de auditoría sin fallar nunca.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{repo: repo, log: log.Component("audit"), now: time.Now}
}

// Record agrega una entrada. Los errores (y panics del repositorio) se registran
// en el logger y se descartan. La escritura no hereda la cancelación de ctx:
// una petición que ya respondió igual deja su rastro.
func (r *Recorder) Record(ctx context.Context, actor entity.Actor, module, action, detail string) {
	if r == nil || r.repo == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			r.log.Error().Interface("panic", p).Str("module", module).Str("action", action).Msg("auditoría: panic al registrar")
		}
	}()

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		Module:    module,
		Action:    action,
		Detail:    detail,
		CreatedAt: r.now(),
	}
	if err := r.repo.Create(wctx, entry); err != nil {
		r.log.Warn().Err(err).Str("module", module).Str("action", action).Msg("auditoría: no se pudo registrar")
	}
}

var pastTense = map[string]string{
	entity.AuditCreate: "creado",
	entity.AuditUpdate: "actualizado",
	entity.AuditDelete: "eliminado",
}

// RecordChange hook de cambios de modelo: module es uno de los Module* y action
// uno de create/update/delete. name identifica el registro afectado.
func (r *Recorder) RecordChange(ctx context.Context, actor entity.Actor, module, action, name string) {
	verb, ok := pastTense[action]
	if !ok {
		verb = action
	}
	detail := fmt.Sprintf("%s %q %s por %s", module, name, verb, actor.Name())
	r.Record(ctx, actor, module, action, detail)
}
