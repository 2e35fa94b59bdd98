package handler

import (
	"errors"
	"log"

	"biometrico-backend/internal/biometria"
	"biometrico-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegistradorPonto é o serviço de ponto visto pelo terminal.
type RegistradorPonto interface {
	RegistrarPonto(unidadeID uint) (*service.ResultadoPonto, error)
	Identificar() (*service.Identidade, error)
}

type PontoHandler struct {
	servico RegistradorPonto
}

func NewPontoHandler(servico RegistradorPonto) *PontoHandler {
	return &PontoHandler{servico: servico}
}

type RegistrarPontoRequest struct {
	UnidadeID uint `json:"unidade_id"`
}

func (h *PontoHandler) RegistrarPonto(c *fiber.Ctx) error {
	var req RegistrarPontoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Dados inválidos"})
	}

	resultado, err := h.servico.RegistrarPonto(req.UnidadeID)
	if err != nil {
		return responderErroPonto(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      resultado.Mensagem,
		"funcionario":  resultado.Funcionario,
		"matricula":    resultado.Matricula,
		"cargo":        resultado.Cargo,
		"unidade_id":   resultado.UnidadeID,
		"data_hora":    resultado.DataHora,
		"tipo_ponto":   resultado.TipoPonto,
		"tipo_vinculo": resultado.TipoVinculo,
	})
}

func (h *PontoHandler) Identify(c *fiber.Ctx) error {
	ident, err := h.servico.Identificar()
	if err != nil {
		return responderErroPonto(c, err)
	}

	mensagem := "User identified: " + ident.Nome
	if ident.TipoVinculo == "vinculo_adicional" {
		mensagem += " (Vínculo Adicional)"
	}

	return c.JSON(fiber.Map{
		"message":        mensagem,
		"cpf":            ident.CPF,
		"cargo":          ident.Cargo,
		"data_admissao":  ident.DataAdmissao,
		"unidade_id":     ident.UnidadeID,
		"matricula":      ident.Matricula,
		"funcionario_id": ident.FuncionarioID,
		"tipo":           ident.TipoVinculo,
	})
}

// responderErroPonto traduz a taxonomia do serviço para os status que
// os terminais esperam. Erros de negócio vão com a mensagem original;
// falha de leitor/banco vira um "tente novamente" genérico.
func responderErroPonto(c *fiber.Ctx, err error) error {
	var unidadeDiferente *service.ErroUnidadeDiferente
	var aguarde *service.ErroAguardeSaida
	var jaRegistrada *service.ErroSaidaJaRegistrada
	var folha *service.ErroFolha

	switch {
	case errors.Is(err, biometria.ErrSemDigital):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Nenhuma impressão digital capturada. Por favor, tente novamente.",
		})
	case errors.Is(err, biometria.ErrNaoIdentificado):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Usuário não identificado. Digital não cadastrada no sistema.",
		})
	case errors.Is(err, service.ErrUnidadeObrigatoria):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unidade_id é obrigatório"})
	case errors.Is(err, service.ErrFuncionarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Funcionário não encontrado no banco de dados."})
	case errors.Is(err, service.ErrVinculoNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Vínculo adicional não encontrado"})
	case errors.Is(err, service.ErrDeFerias):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Funcionário de férias, você não pode registrar o ponto!"})
	case errors.As(err, &unidadeDiferente):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message":             "Funcionário não pertence a esta unidade.",
			"funcionario":         unidadeDiferente.Funcionario,
			"unidade_funcionario": unidadeDiferente.UnidadeFuncionario,
			"unidade_terminal":    unidadeDiferente.UnidadeTerminal,
		})
	case errors.As(err, &aguarde):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": aguarde.Error() + "."})
	case errors.As(err, &jaRegistrada):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": jaRegistrada.Error() + "."})
	case errors.As(err, &folha):
		status := folha.Status
		if status == 0 {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{"message": folha.Error()})
	default:
		log.Printf("Erro ao registrar ponto: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erro ao registrar ponto no sistema"})
	}
}
