package middleware

import (
	"strings"

	"biometrico-backend/config"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth valida o token JWT do painel administrativo.
func Auth(c *fiber.Ctx) error {
	// 1. Pega o token do header Authorization
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token não encontrado"})
	}

	// Formato esperado: "Bearer <token>"
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	// 2. Faz o parse e valida o token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(config.GetEnv("JWT_SECRET", "segredo_de_estado")), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token inválido ou expirado"})
	}

	// 3. Guarda os dados do usuário no contexto para uso nos handlers
	claims := token.Claims.(jwt.MapClaims)
	c.Locals("usuario_id", claims["usuario_id"])
	c.Locals("usuario_email", claims["email"])
	c.Locals("usuario_papel", claims["papel"])

	return c.Next()
}

// AuthEmail autentica os terminais legados que enviam o email do
// operador direto no header Authorization, sem token.
func AuthEmail(usuarios repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get("Authorization")
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Usuário não autenticado!"})
		}

		usuario, err := usuarios.FindByEmail(email)
		if err != nil || usuario == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Usuário não encontrado ou não autenticado!"})
		}

		c.Locals("usuario_id", usuario.ID)
		c.Locals("usuario_nome", usuario.Nome)
		c.Locals("usuario_papel", usuario.Papel)

		return c.Next()
	}
}
