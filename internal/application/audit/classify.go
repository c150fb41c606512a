package audit

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// RequestInfo datos de una petición terminada.
type RequestInfo struct {
	Method string
	Path   string
	Export bool // query exportar=1
	Status int
}

// Classification resultado de clasificar una petición.
type Classification struct {
	Module string
	Action string
	Detail string
}

var invoicePath = regexp.MustCompile(`^/api/sales/([^/]+)/invoice/?$`)

// segmento de ruta -> nombre de módulo en el log
var routeModules = map[string]string{
	"products":   "productos",
	"users":      "usuarios",
	"suppliers":  "proveedores",
	"warehouses": "almacenes",
	"categories": "categorias",
	"roles":      "roles",
	"sales":      "ventas",
	"kardex":     "kardex",
	"reports":    "reportes",
	"audit-logs": "auditoria",
	"dashboard":  "dashboard",
	"auth":       "autenticacion",
}

// ClassifyRequest determina módulo, acción y detalle de una petición a la API.
// Devuelve false para rutas que no se auditan (fuera de /api, health, docs).
func ClassifyRequest(r RequestInfo) (Classification, bool) {
	path := strings.TrimRight(r.Path, "/")
	if !strings.HasPrefix(path, "/api/") {
		return Classification{}, false
	}

	if m := invoicePath.FindStringSubmatch(path); m != nil {
		return Classification{
			Module: "ventas",
			Action: entity.AuditExport,
			Detail: fmt.Sprintf("Descarga de factura de la venta %s (%d)", m[1], r.Status),
		}, true
	}

	segs := strings.Split(strings.TrimPrefix(path, "/api/"), "/")
	module, ok := routeModules[segs[0]]
	if !ok {
		module = segs[0]
	}
	// /api/reports/<tipo>: el módulo reportado es el tipo
	if segs[0] == "reports" && len(segs) > 1 {
		module = "reportes/" + segs[1]
	}

	if r.Export {
		return Classification{
			Module: module,
			Action: entity.AuditExport,
			Detail: fmt.Sprintf("Exportación a PDF de %s (%d)", module, r.Status),
		}, true
	}

	action := actionForMethod(r.Method)
	if action == "" {
		return Classification{}, false
	}
	return Classification{
		Module: module,
		Action: action,
		Detail: fmt.Sprintf("%s %s (%d)", r.Method, path, r.Status),
	}, true
}

func actionForMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead:
		return entity.AuditRead
	case http.MethodPost:
		return entity.AuditCreate
	case http.MethodPut, http.MethodPatch:
		return entity.AuditUpdate
	case http.MethodDelete:
		return entity.AuditDelete
	default:
		return ""
	}
}
