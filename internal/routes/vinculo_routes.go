package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVinculoRoutes(app *fiber.App, db *gorm.DB, biometria handler.CadastradorDigital) {
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	vinculoRepo := repository.NewVinculoRepository(db)
	hdl := handler.NewVinculoHandler(funcionarioRepo, vinculoRepo, biometria)

	app.Post("/vinculo", hdl.CriarVinculo)
}
