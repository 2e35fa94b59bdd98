package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFeriasRoutes(app *fiber.App, db *gorm.DB) {
	feriasRepo := repository.NewFeriasRepository(db)
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	hdl := handler.NewFeriasHandler(feriasRepo, funcionarioRepo)

	app.Post("/ferias", hdl.CadastrarFerias)
	app.Get("/ferias/:funcionario_id", hdl.ListarFerias)
	app.Delete("/ferias/:id", hdl.ExcluirFerias)
}
