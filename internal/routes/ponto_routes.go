package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SetupPontoRoutes recebe o serviço pronto porque ele segura o leitor
// biométrico, que é único no processo.
func SetupPontoRoutes(app *fiber.App, pontoService *service.PontoService) {
	hdl := handler.NewPontoHandler(pontoService)

	app.Post("/ponto/registrar", hdl.RegistrarPonto)
	app.Get("/identify", hdl.Identify)
}
