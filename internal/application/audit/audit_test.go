package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, e *entity.AuditLog) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *AuditRepoMock) ListAll(ctx context.Context) ([]*entity.AuditLog, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.AuditLog)
	return list, args.Error(1)
}

type panicRepo struct{ AuditRepoMock }

func (p *panicRepo) Create(context.Context, *entity.AuditLog) error { panic("boom") }

func TestRecordChange_ConActor(t *testing.T) {
	repo := new(AuditRepoMock)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.AuditLog) bool {
		return e.UserID == "u1" && e.Module == audit.ModuleProduct && e.Action == entity.AuditCreate &&
			e.Detail == `Producto "Café" creado por ana` && e.ID != ""
	})).Return(nil).Once()

	rec := audit.NewRecorder(repo, nil)
	rec.RecordChange(context.Background(), entity.Actor{UserID: "u1", Username: "ana"}, audit.ModuleProduct, entity.AuditCreate, "Café")

	repo.AssertExpectations(t)
}

func TestRecordChange_ActorDesconocido(t *testing.T) {
	repo := new(AuditRepoMock)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.AuditLog) bool {
		return e.UserID == "" && e.Detail == `Rol "Vendedor" eliminado por desconocido`
	})).Return(nil).Once()

	audit.NewRecorder(repo, nil).RecordChange(context.Background(), entity.Actor{}, audit.ModuleRole, entity.AuditDelete, "Vendedor")
	repo.AssertExpectations(t)
}

func TestRecord_ErroresNoSePropagan(t *testing.T) {
	repo := new(AuditRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db caída"))

	rec := audit.NewRecorder(repo, nil)
	assert.NotPanics(t, func() {
		rec.Record(context.Background(), entity.Actor{}, "x", "read", "detalle")
	})

	assert.NotPanics(t, func() {
		audit.NewRecorder(&panicRepo{}, nil).Record(context.Background(), entity.Actor{}, "x", "read", "detalle")
	})

	var nilRec *audit.Recorder
	assert.NotPanics(t, func() { nilRec.Record(context.Background(), entity.Actor{}, "x", "read", "") })
}

func TestRecord_ContextoCanceladoIgualEscribe(t *testing.T) {
	repo := new(AuditRepoMock)
	repo.On("Create", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	audit.NewRecorder(repo, nil).Record(ctx, entity.Actor{}, "x", "read", "")
	repo.AssertExpectations(t)
}

func TestClassifyRequest(t *testing.T) {
	cases := []struct {
		name   string
		in     audit.RequestInfo
		module string
		action string
		detail string
	}{
		{"lectura", audit.RequestInfo{Method: "GET", Path: "/api/products", Status: 200}, "productos", "read", "GET /api/products (200)"},
		{"creación", audit.RequestInfo{Method: "POST", Path: "/api/sales/", Status: 201}, "ventas", "create", "POST /api/sales (201)"},
		{"actualización", audit.RequestInfo{Method: "PUT", Path: "/api/roles/1", Status: 200}, "roles", "update", "PUT /api/roles/1 (200)"},
		{"eliminación", audit.RequestInfo{Method: "DELETE", Path: "/api/warehouses/9", Status: 204}, "almacenes", "delete", "DELETE /api/warehouses/9 (204)"},
		{"exportación", audit.RequestInfo{Method: "GET", Path: "/api/reports/products", Export: true, Status: 200}, "reportes/products", "export", "Exportación a PDF de reportes/products (200)"},
		{"factura", audit.RequestInfo{Method: "GET", Path: "/api/sales/abc/invoice", Status: 200}, "ventas", "export", "Descarga de factura de la venta abc (200)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := audit.ClassifyRequest(c.in)
			require.True(t, ok)
			assert.Equal(t, c.module, got.Module)
			assert.Equal(t, c.action, got.Action)
			assert.Equal(t, c.detail, got.Detail)
		})
	}
}

func TestClassifyRequest_RutasIgnoradas(t *testing.T) {
	for _, in := range []audit.RequestInfo{
		{Method: "GET", Path: "/health"},
		{Method: "GET", Path: "/docs/index.html"},
		{Method: "OPTIONS", Path: "/api/products"},
	} {
		_, ok := audit.ClassifyRequest(in)
		assert.False(t, ok, in.Path)
	}
}

func TestUseCase_ListAll(t *testing.T) {
	now := time.Now()
	repo := new(AuditRepoMock)
	repo.On("ListAll", mock.Anything).Return([]*entity.AuditLog{
		{Detail: "b", CreatedAt: now},
		{Detail: "a", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	out, err := audit.NewUseCase(repo).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Detail)
	assert.Equal(t, now, out[0].Date)
}
