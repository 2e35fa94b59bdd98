package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRegistroRoutes(app *fiber.App, db *gorm.DB, biometria handler.CadastradorDigital) {
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	vinculoRepo := repository.NewVinculoRepository(db)
	hdl := handler.NewRegistroHandler(funcionarioRepo, vinculoRepo, biometria)

	app.Post("/register", hdl.RegisterUser)
	app.Put("/register/biometria", hdl.AtualizarBiometria)
	app.Get("/funcionarios", hdl.ListarFuncionarios)
}
