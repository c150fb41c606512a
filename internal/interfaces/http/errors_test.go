package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
)

func respond(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return writeError(c, err) })
	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w para Café (C1)", domain.ErrInsufficientStock), http.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrUnknownCurrency, http.StatusUnprocessableEntity, "UNKNOWN_CURRENCY"},
		{domain.ErrMalformedSale, http.StatusBadRequest, "MALFORMED_SALE"},
		{domain.ErrAmbiguousLogin, http.StatusUnauthorized, "AMBIGUOUS_LOGIN"},
		{domain.ErrInactiveRole, http.StatusForbidden, "INACTIVE_ROLE"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, c := range cases {
		status, body := respond(t, c.err)
		assert.Equal(t, c.status, status, c.err.Error())
		assert.Equal(t, c.code, body.Code, c.err.Error())
	}
}

func TestWriteError_InternoNoExponeDetalle(t *testing.T) {
	status, body := respond(t, fmt.Errorf("get product: %w", errors.New(`ERROR: invalid input syntax for type uuid: "abc" (SQLSTATE 22P02)`)))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE")
}

func TestWriteError_CredencialesNoDistinguibles(t *testing.T) {
	_, a := respond(t, domain.ErrUserNotFound)
	_, b := respond(t, domain.ErrUnauthorized)
	assert.Equal(t, a, b)
}

func TestWriteError_Validacion(t *testing.T) {
	status, body := respond(t, domain.NewValidationError("name", "es obligatorio"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, map[string]string{"name": "es obligatorio"}, body.Fields)
}

func TestValidateStruct_NombresJSON(t *testing.T) {
	err := validateStruct(&dto.ProductRequest{Currency: "GBP", Quantity: -2})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "es obligatorio", verr.Fields["name"])
	assert.Equal(t, "es obligatorio", verr.Fields["sku"])
	assert.Contains(t, verr.Fields["currency"], "COP USD EUR")
	assert.Equal(t, "mínimo 0", verr.Fields["quantity"])

	err = validateStruct(&dto.CreateSaleRequest{Items: []dto.SaleItemRequest{{Quantity: 1}}})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items[0].product_id")

	err = validateStruct(&dto.CreateSaleRequest{Items: []dto.SaleItemRequest{{ProductID: "abc", Quantity: 1}}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "identificador inválido", verr.Fields["items[0].product_id"])

	err = validateStruct(&dto.CreateSaleRequest{ProductIDs: []string{"abc"}, Quantities: []int{1}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "identificador inválido", verr.Fields["product_ids[0]"])

	assert.NoError(t, validateStruct(&dto.LoginRequest{Login: "ana", Password: "x"}))
}

func TestSaleHandler_IDNoUUIDEsErrorDeValidacion(t *testing.T) {
	app := fiber.New()
	app.Post("/api/sales", NewSaleHandler(nil, nil).Create)

	for _, body := range []string{
		`{"items":[{"product_id":"abc","quantity":1}]}`,
		`{"product_ids":["abc"],"quantities":[1]}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "VALIDATION", out.Code, body)
	}
}
