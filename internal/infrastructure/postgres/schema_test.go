package postgres

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/sales"
)

// numericColumn devuelve (precisión, escala) de column dentro de CREATE TABLE table.
func numericColumn(t *testing.T, table, column string) (int, int) {
	t.Helper()
	start := strings.Index(schemaSQL, "CREATE TABLE IF NOT EXISTS "+table+" (")
	require.GreaterOrEqual(t, start, 0, table)
	body := schemaSQL[start:]
	body = body[:strings.Index(body, ");")]
	m := regexp.MustCompile(`(?m)^\s*` + column + `\s+NUMERIC\((\d+),(\d+)\)`).FindStringSubmatch(body)
	require.Len(t, m, 3, table+"."+column)
	p, _ := strconv.Atoi(m[1])
	s, _ := strconv.Atoi(m[2])
	return p, s
}

// maxValue mayor valor representable en NUMERIC(p,s).
func maxValue(p, s int) decimal.Decimal {
	return decimal.New(1, int32(p-s)).Sub(decimal.New(1, int32(-s)))
}

func TestSchema_PrecioConvertidoCabeEnLineaDeVenta(t *testing.T) {
	priceMax := maxValue(numericColumn(t, "products", "unit_price"))
	lineMax := maxValue(numericColumn(t, "sale_lines", "unit_price"))

	for _, cur := range []string{entity.CurrencyCOP, entity.CurrencyUSD, entity.CurrencyEUR} {
		cop, err := sales.ToCOP(priceMax, cur)
		require.NoError(t, err)
		require.True(t, cop.LessThanOrEqual(lineMax), "%s: %s no cabe en sale_lines.unit_price", cur, cop)
	}
}

func TestSchema_AmpliaBasesExistentes(t *testing.T) {
	require.Contains(t, schemaSQL, "ALTER TABLE sale_lines ALTER COLUMN unit_price TYPE NUMERIC(20,2);")
}
