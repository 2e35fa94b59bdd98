package handler

import (
	"strconv"
	"time"

	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type FeriasHandler struct {
	ferias       repository.FeriasRepository
	funcionarios repository.FuncionarioRepository
}

func NewFeriasHandler(ferias repository.FeriasRepository, funcionarios repository.FuncionarioRepository) *FeriasHandler {
	return &FeriasHandler{ferias: ferias, funcionarios: funcionarios}
}

type FeriasRequest struct {
	FuncionarioID uint   `json:"funcionario_id"`
	DataInicio    string `json:"data_inicio"`
	DataFim       string `json:"data_fim"`
}

func (h *FeriasHandler) CadastrarFerias(c *fiber.Ctx) error {
	var req FeriasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Dados inválidos"})
	}

	inicio, errInicio := time.Parse("2006-01-02", req.DataInicio)
	fim, errFim := time.Parse("2006-01-02", req.DataFim)
	if req.FuncionarioID == 0 || errInicio != nil || errFim != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "funcionario_id, data_inicio e data_fim (YYYY-MM-DD) são obrigatórios",
		})
	}
	if fim.Before(inicio) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "data_fim não pode ser anterior a data_inicio"})
	}

	funcionario, err := h.funcionarios.FindByID(req.FuncionarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar funcionário"})
	}
	if funcionario == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Funcionário não encontrado"})
	}

	ferias := model.Ferias{
		FuncionarioID: req.FuncionarioID,
		DataInicio:    req.DataInicio,
		DataFim:       req.DataFim,
	}
	if err := h.ferias.Create(&ferias); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao cadastrar férias"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Férias cadastradas com sucesso",
		"ferias":  ferias,
	})
}

func (h *FeriasHandler) ListarFerias(c *fiber.Ctx) error {
	funcionarioID, err := strconv.Atoi(c.Params("funcionario_id"))
	if err != nil || funcionarioID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "funcionario_id inválido"})
	}

	lista, err := h.ferias.ListarPorFuncionario(uint(funcionarioID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao listar férias"})
	}
	return c.JSON(fiber.Map{"data": lista})
}

func (h *FeriasHandler) ExcluirFerias(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "id inválido"})
	}
	if err := h.ferias.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao excluir férias"})
	}
	return c.JSON(fiber.Map{"message": "Férias excluídas com sucesso"})
}
