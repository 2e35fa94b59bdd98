package handler

import (
	"fmt"
	"log"
	"strings"

	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CadastradorDigital registra uma digital nova no leitor e devolve o
// FIR exportado.
type CadastradorDigital interface {
	CadastrarDigital(matricula string) (string, error)
}

type RegistroHandler struct {
	funcionarios repository.FuncionarioRepository
	vinculos     repository.VinculoRepository
	biometria    CadastradorDigital
}

func NewRegistroHandler(funcionarios repository.FuncionarioRepository, vinculos repository.VinculoRepository, biometria CadastradorDigital) *RegistroHandler {
	return &RegistroHandler{funcionarios: funcionarios, vinculos: vinculos, biometria: biometria}
}

type RegistroRequest struct {
	Nome         string `json:"userName"`
	CPF          string `json:"cpf"`
	Cargo        string `json:"cargo"`
	Matricula    string `json:"matricula"`
	UnidadeID    uint   `json:"unidade_id"`
	DataAdmissao string `json:"data_admissao"`
	TipoEscala   string `json:"tipo_escala"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
}

func (h *RegistroHandler) RegisterUser(c *fiber.Ctx) error {
	var req RegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Dados inválidos"})
	}

	// 1. Validações de entrada
	if !model.TipoEscalaValido(req.TipoEscala) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tipo de escala inválido. Valores válidos: '" + strings.Join(model.TiposEscalaValidos, "', '") + "'",
		})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email é obrigatório."})
	}
	if req.Nome == "" || req.CPF == "" || req.Matricula == "" || req.UnidadeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userName, cpf, matricula e unidade_id são obrigatórios"})
	}

	// 2. Cadastra a digital no leitor usando a matrícula como chave
	idBiometrico, err := h.biometria.CadastrarDigital(req.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Erro durante o registro biométrico: %v", err),
		})
	}

	// 3. Unicidade global: digital, CPF, email, matrícula e nome,
	// contando também as matrículas dos vínculos adicionais
	duplicado, err := h.funcionarios.ExisteDuplicado(idBiometrico, req.CPF, req.Email, req.Matricula, req.Nome)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar cadastro"})
	}
	if duplicado {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User ID, CPF, Email, Matrícula ou Nome já existe"})
	}
	matriculaEmVinculo, err := h.vinculos.MatriculaExiste(req.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar cadastro"})
	}
	if matriculaEmVinculo {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Matrícula já existe nos vínculos adicionais"})
	}

	// 4. Persiste o funcionário
	funcionario := model.Funcionario{
		Nome:         req.Nome,
		CPF:          req.CPF,
		Cargo:        req.Cargo,
		Matricula:    req.Matricula,
		UnidadeID:    req.UnidadeID,
		DataAdmissao: req.DataAdmissao,
		TipoEscala:   req.TipoEscala,
		Telefone:     req.Telefone,
		Email:        req.Email,
		IDBiometrico: idBiometrico,
	}
	if err := h.funcionarios.Create(&funcionario); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao salvar funcionário"})
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"user": fiber.Map{
			"id":            funcionario.ID,
			"nome":          funcionario.Nome,
			"cpf":           funcionario.CPF,
			"cargo":         funcionario.Cargo,
			"matricula":     funcionario.Matricula,
			"unidade_id":    funcionario.UnidadeID,
			"tipo_escala":   funcionario.TipoEscala,
			"telefone":      funcionario.Telefone,
			"email":         funcionario.Email,
			"data_admissao": funcionario.DataAdmissao,
			"id_biometrico": funcionario.IDBiometrico,
		},
	})
}

type AtualizarBiometriaRequest struct {
	FuncionarioID uint   `json:"funcionario_id"`
	Matricula     string `json:"matricula"`
}

// AtualizarBiometria recadastra a digital de um funcionário já
// existente (dedo machucado, leitura degradada, troca de leitor).
func (h *RegistroHandler) AtualizarBiometria(c *fiber.Ctx) error {
	var req AtualizarBiometriaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Dados inválidos"})
	}
	if req.FuncionarioID == 0 && req.Matricula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "É necessário fornecer funcionario_id ou matricula"})
	}

	// 1. Localiza o funcionário por id ou matrícula
	var funcionario *model.Funcionario
	var err error
	if req.FuncionarioID != 0 {
		funcionario, err = h.funcionarios.FindByID(req.FuncionarioID)
	} else {
		funcionario, err = h.funcionarios.FindByMatricula(req.Matricula)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar funcionário"})
	}
	if funcionario == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Funcionário não encontrado"})
	}

	// 2. Recadastra a digital no leitor sob a mesma matrícula
	antigo := funcionario.IDBiometrico
	novo, err := h.biometria.CadastrarDigital(funcionario.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Erro durante o registro biométrico: %v", err),
		})
	}

	// 3. A digital nova não pode pertencer a outro funcionário
	dono, err := h.funcionarios.BiometriaEmUso(novo, funcionario.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao consultar cadastro"})
	}
	if dono != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Este ID biométrico já está sendo usado por outro funcionário: " + dono.Nome,
		})
	}

	// 4. Persiste a digital nova
	if err := h.funcionarios.AtualizarBiometria(funcionario.ID, novo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao atualizar biometria"})
	}

	log.Printf("[BIOMETRIA ATUALIZADA] Funcionário: %s | ID: %d | Matrícula: %s | ID Biométrico Antigo: %s | Novo ID Biométrico: %s",
		funcionario.Nome, funcionario.ID, funcionario.Matricula, antigo, novo)

	return c.JSON(fiber.Map{
		"message": "Biometria atualizada com sucesso para " + funcionario.Nome,
		"funcionario": fiber.Map{
			"id":                   funcionario.ID,
			"nome":                 funcionario.Nome,
			"matricula":            funcionario.Matricula,
			"unidade_id":           funcionario.UnidadeID,
			"id_biometrico_antigo": antigo,
			"id_biometrico_novo":   novo,
		},
	})
}

func (h *RegistroHandler) ListarFuncionarios(c *fiber.Ctx) error {
	lista, err := h.funcionarios.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao listar funcionários"})
	}
	return c.JSON(fiber.Map{"data": lista})
}
