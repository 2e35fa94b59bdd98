package handler

import (
	"fmt"
	"strings"

	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type VinculoHandler struct {
	funcionarios repository.FuncionarioRepository
	vinculos     repository.VinculoRepository
	biometria    CadastradorDigital
}

func NewVinculoHandler(funcionarios repository.FuncionarioRepository, vinculos repository.VinculoRepository, biometria CadastradorDigital) *VinculoHandler {
	return &VinculoHandler{funcionarios: funcionarios, vinculos: vinculos, biometria: biometria}
}

type VinculoRequest struct {
	FuncionarioID uint   `json:"funcionario_id"`
	UnidadeID     uint   `json:"unidade_id"`
	Matricula     string `json:"matricula"`
	TipoEscala    string `json:"tipo_escala"`
	Cargo         string `json:"cargo"`
}

// CriarVinculo cadastra um vínculo adicional: mesmo funcionário,
// segunda unidade, matrícula e digital próprias.
func (h *VinculoHandler) CriarVinculo(c *fiber.Ctx) error {
	var req VinculoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Body da requisição está vazio ou inválido"})
	}

	// 1. Campos obrigatórios
	if req.FuncionarioID == 0 || req.UnidadeID == 0 || req.Matricula == "" || req.TipoEscala == "" || req.Cargo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "funcionario_id, unidade_id, matricula, tipo_escala e cargo são obrigatórios",
		})
	}
	if !model.TipoEscalaValido(req.TipoEscala) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tipo de escala inválido. Valores válidos: " + strings.Join(model.TiposEscalaValidos, ", "),
		})
	}

	// 2. Funcionário principal precisa existir
	funcionario, err := h.funcionarios.FindByID(req.FuncionarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar funcionário"})
	}
	if funcionario == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Funcionário não encontrado"})
	}

	// 3. Matrícula única no sistema inteiro (principais + vínculos)
	principal, err := h.funcionarios.FindByMatricula(req.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar matrícula"})
	}
	if principal != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Matrícula já existe"})
	}
	existe, err := h.vinculos.MatriculaExiste(req.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar matrícula"})
	}
	if existe {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Matrícula já existe nos vínculos adicionais"})
	}

	// 4. Registra a biometria usando o leitor
	idBiometrico, err := h.biometria.CadastrarDigital(req.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Erro durante o registro biométrico: %v", err),
		})
	}

	// 5. Persiste o vínculo já ativo
	vinculo := model.VinculoAdicional{
		FuncionarioID: req.FuncionarioID,
		UnidadeID:     req.UnidadeID,
		Matricula:     req.Matricula,
		TipoEscala:    req.TipoEscala,
		Cargo:         req.Cargo,
		IDBiometrico:  idBiometrico,
		Status:        true,
	}
	if err := h.vinculos.Create(&vinculo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao criar vínculo adicional"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Vínculo adicional criado com sucesso",
		"vinculo": fiber.Map{
			"id":               vinculo.ID,
			"funcionario_id":   vinculo.FuncionarioID,
			"funcionario_nome": funcionario.Nome,
			"unidade_id":       vinculo.UnidadeID,
			"matricula":        vinculo.Matricula,
			"id_biometrico":    vinculo.IDBiometrico,
			"tipo_escala":      vinculo.TipoEscala,
			"cargo":            vinculo.Cargo,
			"status":           vinculo.Status,
		},
	})
}
