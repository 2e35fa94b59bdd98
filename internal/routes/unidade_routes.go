package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUnidadeRoutes(app *fiber.App, db *gorm.DB) {
	unidadeRepo := repository.NewUnidadeRepository(db)
	hdl := handler.NewUnidadeHandler(unidadeRepo)

	app.Post("/unidades", hdl.CriarUnidade)
	app.Get("/unidades", hdl.ListarUnidades)
}
