package biometria

import (
	"fmt"

	"biometrico-backend/internal/repository"
)

// ToleranciaPadrao é o limiar de identificação observado nos
// terminais em produção.
const ToleranciaPadrao = 5

// Servico junta o gateway do leitor com a remontagem do índice: é o
// caminho completo digital → id numérico.
type Servico struct {
	gateway      *Gateway
	funcionarios repository.FuncionarioRepository
	vinculos     repository.VinculoRepository
	tolerancia   int
	comparador   Comparador
}

func NovoServico(gateway *Gateway, funcionarios repository.FuncionarioRepository, vinculos repository.VinculoRepository, tolerancia int) *Servico {
	if tolerancia <= 0 {
		tolerancia = ToleranciaPadrao
	}
	return &Servico{
		gateway:      gateway,
		funcionarios: funcionarios,
		vinculos:     vinculos,
		tolerancia:   tolerancia,
	}
}

// ComComparador troca o matching padrão pelo do fabricante.
func (s *Servico) ComComparador(c Comparador) *Servico {
	s.comparador = c
	return s
}

// montarIndex monta um índice novo com todos os funcionários e
// vínculos ativos. Qualquer falha de leitura aborta a tentativa:
// identificar contra um índice parcial geraria falso "não
// identificado".
func (s *Servico) montarIndex() (*IndexSearch, error) {
	funcionarios, err := s.funcionarios.ListarComBiometria()
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar digitais dos funcionários: %w", err)
	}
	vinculos, err := s.vinculos.ListarAtivos()
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar digitais dos vínculos: %w", err)
	}

	index := NewIndexSearch()
	if s.comparador != nil {
		index = NewIndexSearchCom(s.comparador)
	}
	index.ClearDB()
	for _, f := range funcionarios {
		index.AddFIR(f.IDBiometrico, int(f.ID))
	}
	for _, v := range vinculos {
		index.AddFIR(v.IDBiometrico, VinculoOffset+int(v.ID))
	}
	return index, nil
}

// Identificar remonta o índice, captura uma digital no leitor e
// devolve o id numérico identificado. Erros possíveis:
// ErrSemDigital (sem dedo), ErrNaoIdentificado (sem correspondência)
// e erros de leitor/banco.
func (s *Servico) Identificar() (int, error) {
	index, err := s.montarIndex()
	if err != nil {
		return 0, err
	}

	fir, err := s.gateway.Capturar()
	if err != nil {
		return 0, err
	}

	id := index.IdentifyUser(fir, s.tolerancia)
	if id == 0 {
		return 0, ErrNaoIdentificado
	}
	return id, nil
}

// CadastrarDigital registra uma nova digital no leitor usando a
// matrícula como chave e devolve o FIR para persistência.
func (s *Servico) CadastrarDigital(matricula string) (string, error) {
	return s.gateway.Cadastrar(matricula)
}

// Gateway expõe o gateway compartilhado (usado pelo loop contínuo).
func (s *Servico) Gateway() *Gateway {
	return s.gateway
}
