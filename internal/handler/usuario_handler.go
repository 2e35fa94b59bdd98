package handler

import (
	"time"

	"biometrico-backend/config"
	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioHandler struct {
	usuarios repository.UsuarioRepository
}

func NewUsuarioHandler(usuarios repository.UsuarioRepository) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios}
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login autentica um usuário do painel e devolve um token JWT válido
// por 24 horas.
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Corpo da requisição inválido"})
	}
	if req.Email == "" || req.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email e senha são obrigatórios"})
	}

	usuario, err := h.usuarios.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao buscar usuário"})
	}
	if usuario == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Email ou senha incorretos"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(req.Senha)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Email ou senha incorretos"})
	}

	claims := jwt.MapClaims{
		"usuario_id": usuario.ID,
		"email":      usuario.Email,
		"papel":      usuario.Papel,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString([]byte(config.GetEnv("JWT_SECRET", "segredo_de_estado")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao gerar token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login realizado com sucesso",
		"token":   assinado,
		"usuario": fiber.Map{
			"id":    usuario.ID,
			"nome":  usuario.Nome,
			"email": usuario.Email,
			"papel": usuario.Papel,
		},
	})
}

// CriarUsuario registra um novo usuário do painel administrativo.
func (h *UsuarioHandler) CriarUsuario(c *fiber.Ctx) error {
	var req struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
		Papel string `json:"papel"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Corpo da requisição inválido"})
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nome, email e senha são obrigatórios"})
	}

	existente, err := h.usuarios.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao buscar usuário"})
	}
	if existente != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email já cadastrado"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao processar senha"})
	}

	papel := req.Papel
	if papel == "" {
		papel = "operador"
	}
	usuario := model.Usuario{Nome: req.Nome, Email: req.Email, Senha: string(hash), Papel: papel}
	if err := h.usuarios.Create(&usuario); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao criar usuário"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuário criado com sucesso",
		"usuario": fiber.Map{"id": usuario.ID, "nome": usuario.Nome, "email": usuario.Email, "papel": usuario.Papel},
	})
}
