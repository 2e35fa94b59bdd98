package routes

import (
	"biometrico-backend/internal/handler"
	"biometrico-backend/internal/middleware"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUsuarioRoutes(app *fiber.App, db *gorm.DB) {
	usuarioRepo := repository.NewUsuarioRepository(db)
	hdl := handler.NewUsuarioHandler(usuarioRepo)

	app.Post("/login", hdl.Login)

	admin := app.Group("/usuarios", middleware.Auth)
	admin.Post("/", hdl.CriarUsuario)
}
