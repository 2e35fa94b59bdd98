package handler

import (
	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type UnidadeHandler struct {
	unidades repository.UnidadeRepository
}

func NewUnidadeHandler(unidades repository.UnidadeRepository) *UnidadeHandler {
	return &UnidadeHandler{unidades: unidades}
}

func (h *UnidadeHandler) CriarUnidade(c *fiber.Ctx) error {
	var req struct {
		Nome     string `json:"nome"`
		Endereco string `json:"endereco"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Dados inválidos"})
	}
	if req.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nome da unidade é obrigatório"})
	}

	unidade := model.Unidade{Nome: req.Nome, Endereco: req.Endereco}
	if err := h.unidades.Create(&unidade); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao criar unidade"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Unidade criada com sucesso",
		"unidade": unidade,
	})
}

func (h *UnidadeHandler) ListarUnidades(c *fiber.Ctx) error {
	unidades, err := h.unidades.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao listar unidades"})
	}
	return c.JSON(fiber.Map{"data": unidades})
}
