package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/middleware"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRelatorioRoutes(app *fiber.App, db *gorm.DB) {
	pontoRepo := repository.NewPontoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	hdl := handler.NewRelatorioHandler(pontoRepo)

	// Os terminais legados mandam o email do operador no header.
	api := app.Group("/registros", middleware.AuthEmail(usuarioRepo))
	api.Get("/", hdl.ListarRegistros)
	api.Get("/funcionario/:funcionario_id", hdl.ListarPorFuncionario)
}
