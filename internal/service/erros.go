package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFuncionarioNaoEncontrado: o índice devolveu um id sem registro
	// correspondente no banco (inconsistência de dados).
	ErrFuncionarioNaoEncontrado = errors.New("funcionário não encontrado no banco de dados")

	// ErrVinculoNaoEncontrado: id com offset apontando para vínculo
	// inexistente ou desativado.
	ErrVinculoNaoEncontrado = errors.New("vínculo adicional não encontrado")

	// ErrDeFerias bloqueia o ponto durante o intervalo de férias
	// (datas inclusivas nas duas pontas).
	ErrDeFerias = errors.New("funcionário de férias, você não pode registrar o ponto")

	// ErrUnidadeObrigatoria: terminal não informou a unidade.
	ErrUnidadeObrigatoria = errors.New("unidade_id é obrigatório")
)

// ErroUnidadeDiferente: a unidade do terminal não bate com a unidade
// do funcionário (ou do vínculo) identificado. Carrega os dois nomes
// para o operador diagnosticar.
type ErroUnidadeDiferente struct {
	Funcionario        string
	UnidadeFuncionario string
	UnidadeTerminal    string
}

func (e *ErroUnidadeDiferente) Error() string {
	return "funcionário não pertence a esta unidade"
}

// ErroAguardeSaida: a saída veio antes do intervalo mínimo após a
// entrada. O registro não é alterado.
type ErroAguardeSaida struct {
	MinutosMinimos   int
	MinutosRestantes int
}

func (e *ErroAguardeSaida) Error() string {
	return fmt.Sprintf("você deve aguardar pelo menos %d minutos após a entrada para registrar a saída. Tempo restante: %d minuto(s)",
		e.MinutosMinimos, e.MinutosRestantes)
}

// ErroSaidaJaRegistrada: o ciclo da janela já foi fechado; nada mais é
// aceito até abrir uma nova janela.
type ErroSaidaJaRegistrada struct {
	Data string // dd/mm/aaaa
}

func (e *ErroSaidaJaRegistrada) Error() string {
	return fmt.Sprintf("você já bateu seu ponto de saída hoje (%s)", e.Data)
}

// ErroFolha carrega a resposta de erro do serviço de cálculo de folha
// para repasse ao chamador (status e corpo originais quando houver).
type ErroFolha struct {
	Status int
	Corpo  string
}

func (e *ErroFolha) Error() string {
	if e.Corpo != "" {
		return e.Corpo
	}
	return "erro ao registrar ponto no sistema"
}
