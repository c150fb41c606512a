package main

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// mountSwagger sirve la UI en /docs solo si existe el JSON generado con `swag init`;
// swagger.New entra en pánico cuando el archivo no existe.
func mountSwagger(app *fiber.App, filePath string, log *logger.Logger) bool {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Err(err).Str("file", filePath).Msg("swagger deshabilitado: documento no generado")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Nova Inventario API",
	}))
	return true
}
