package handler

import (
	"strconv"

	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RelatorioHandler struct {
	pontos repository.PontoRepository
}

func NewRelatorioHandler(pontos repository.PontoRepository) *RelatorioHandler {
	return &RelatorioHandler{pontos: pontos}
}

// ListarRegistros devolve todos os registros de ponto com funcionário
// e unidade para o painel de relatórios.
func (h *RelatorioHandler) ListarRegistros(c *fiber.Ctx) error {
	registros, err := h.pontos.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao listar registros de ponto"})
	}

	formatados := make([]fiber.Map, 0, len(registros))
	for _, r := range registros {
		formatados = append(formatados, fiber.Map{
			"id":             r.ID,
			"funcionario_id": r.FuncionarioID,
			"funcionario":    r.Funcionario.Nome,
			"unidade":        r.Unidade.Nome,
			"data_hora":      r.DataHora.Format("02/01/2006"),
			"hora_entrada":   r.HoraEntrada,
			"hora_saida":     r.HoraSaida,
			"id_biometrico":  r.IDBiometrico,
		})
	}
	return c.JSON(formatados)
}

func (h *RelatorioHandler) ListarPorFuncionario(c *fiber.Ctx) error {
	funcionarioID, err := strconv.Atoi(c.Params("funcionario_id"))
	if err != nil || funcionarioID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "funcionario_id inválido"})
	}

	registros, err := h.pontos.ListarPorFuncionario(uint(funcionarioID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao listar registros de ponto"})
	}
	return c.JSON(fiber.Map{"data": registros})
}
