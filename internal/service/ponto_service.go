package service

import (
	"fmt"
	"log"
	"time"

	"biometrico-backend/internal/biometria"
	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"
)

// IntervaloMinimoSaidaPadrao é o bloqueio entre entrada e saída. As
// implantações que usam 1 minuto ajustam via INTERVALO_MINIMO_SAIDA.
const IntervaloMinimoSaidaPadrao = 5 * time.Minute

// Identificador é o caminho digital → id numérico (biometria.Servico
// em produção, fake nos testes).
type Identificador interface {
	Identificar() (int, error)
}

// Identidade é o resultado da resolução de um id do índice contra o
// banco: funcionário principal ou vínculo adicional.
type Identidade struct {
	FuncionarioID uint
	VinculoID     uint   // 0 para funcionário principal
	TipoVinculo   string // funcionario_principal | vinculo_adicional
	Nome          string
	CPF           string
	Matricula     string
	Cargo         string
	Email         string
	DataAdmissao  string
	TipoEscala    string
	UnidadeID     uint
	IDBiometrico  string
	Ferias        []model.Ferias
}

// ResultadoPonto descreve a decisão tomada para um ponto aceito.
type ResultadoPonto struct {
	TipoPonto   string // entrada | saida
	TipoVinculo string
	Funcionario string
	Matricula   string
	Cargo       string
	UnidadeID   uint
	DataHora    string // dd/mm/aaaa hh:mm:ss
	Duracao     time.Duration
	Mensagem    string
}

// PontoService é a máquina de estados do ponto: identifica, valida
// unidade/férias, decide entrada ou saída pela janela da escala e
// grava exatamente um registro por decisão.
type PontoService struct {
	biometria    Identificador
	pontos       repository.PontoRepository
	funcionarios repository.FuncionarioRepository
	vinculos     repository.VinculoRepository
	unidades     repository.UnidadeRepository
	notificador  Notificador
	folha        *FolhaClient // nil quando a gravação é direta no banco

	IntervaloMinimoSaida time.Duration
	Agora                func() time.Time
}

func NovoPontoService(
	biometria Identificador,
	pontos repository.PontoRepository,
	funcionarios repository.FuncionarioRepository,
	vinculos repository.VinculoRepository,
	unidades repository.UnidadeRepository,
	notificador Notificador,
	folha *FolhaClient,
) *PontoService {
	return &PontoService{
		biometria:            biometria,
		pontos:               pontos,
		funcionarios:         funcionarios,
		vinculos:             vinculos,
		unidades:             unidades,
		notificador:          notificador,
		folha:                folha,
		IntervaloMinimoSaida: IntervaloMinimoSaidaPadrao,
		Agora:                time.Now,
	}
}

// Identificar captura e resolve a identidade sem registrar ponto
// (rota /identify do quiosque).
func (s *PontoService) Identificar() (*Identidade, error) {
	id, err := s.biometria.Identificar()
	if err != nil {
		return nil, err
	}
	return s.resolverIdentidade(id)
}

// RegistrarPonto executa o fluxo completo: captura, identificação,
// validações e a decisão entrada/saída/rejeição.
func (s *PontoService) RegistrarPonto(unidadeIDTerminal uint) (*ResultadoPonto, error) {
	if unidadeIDTerminal == 0 {
		return nil, ErrUnidadeObrigatoria
	}

	// 1. Captura e identifica contra o índice recém-montado
	id, err := s.biometria.Identificar()
	if err != nil {
		return nil, err
	}

	// 2. Resolve a identidade (principal ou vínculo adicional)
	ident, err := s.resolverIdentidade(id)
	if err != nil {
		return nil, err
	}

	agora := s.Agora()

	// 3. Validação de unidade (terminal vs funcionário)
	if ident.UnidadeID != unidadeIDTerminal {
		nomeFuncionario := s.nomeUnidade(ident.UnidadeID)
		nomeTerminal := s.nomeUnidade(unidadeIDTerminal)
		log.Printf("[ACESSO NEGADO] Funcionário: %s (ID: %d) | Unidade do funcionário: %s | Unidade do terminal: %s | Data/Hora: %s",
			ident.Nome, ident.FuncionarioID, nomeFuncionario, nomeTerminal, agora.Format("02/01/2006 15:04:05"))
		return nil, &ErroUnidadeDiferente{
			Funcionario:        ident.Nome,
			UnidadeFuncionario: nomeFuncionario,
			UnidadeTerminal:    nomeTerminal,
		}
	}

	// 4. Bloqueio por férias (datas inclusivas)
	hoje := agora.Format("2006-01-02")
	for i := range ident.Ferias {
		if ident.Ferias[i].Contem(hoje) {
			return nil, ErrDeFerias
		}
	}

	// 5. Janela da escala: escalas de turno longo enxergam o dia
	// anterior para fechar entrada que virou a meia-noite
	dias := model.JanelaDias(ident.TipoEscala)
	inicioJanela := agora.AddDate(0, 0, -(dias - 1)).Format("2006-01-02")

	var resultado *ResultadoPonto
	err = s.pontos.Transaction(func(tx repository.PontoRepository) error {
		aberto, err := tx.BuscarAberto(ident.FuncionarioID, inicioJanela, hoje)
		if err != nil {
			return err
		}

		if aberto == nil {
			fechado, err := tx.BuscarFechado(ident.FuncionarioID, inicioJanela, hoje)
			if err != nil {
				return err
			}
			if fechado != nil {
				return &ErroSaidaJaRegistrada{Data: agora.Format("02/01/2006")}
			}
			resultado, err = s.registrarEntrada(tx, ident, unidadeIDTerminal, agora)
			return err
		}

		resultado, err = s.registrarSaida(tx, ident, aberto, agora)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 6. Comprovante por e-mail (melhor-esforço, nunca desfaz o ponto)
	s.enviarComprovante(ident, resultado)

	return resultado, nil
}

// resolverIdentidade decodifica o offset de vínculo e carrega os dados
// do banco. Vínculo inativo e id órfão viram NotFound.
func (s *PontoService) resolverIdentidade(id int) (*Identidade, error) {
	if id >= biometria.VinculoOffset {
		vinculo, err := s.vinculos.FindAtivoByID(uint(id - biometria.VinculoOffset))
		if err != nil {
			return nil, err
		}
		if vinculo == nil {
			return nil, ErrVinculoNaoEncontrado
		}
		funcionario, err := s.funcionarios.FindByID(vinculo.FuncionarioID)
		if err != nil {
			return nil, err
		}
		if funcionario == nil {
			return nil, ErrFuncionarioNaoEncontrado
		}
		return &Identidade{
			FuncionarioID: funcionario.ID,
			VinculoID:     vinculo.ID,
			TipoVinculo:   "vinculo_adicional",
			Nome:          funcionario.Nome,
			CPF:           funcionario.CPF,
			Email:         funcionario.Email,
			DataAdmissao:  funcionario.DataAdmissao,
			Matricula:     vinculo.Matricula,
			Cargo:         vinculo.Cargo,
			TipoEscala:    vinculo.TipoEscala,
			UnidadeID:     vinculo.UnidadeID,
			IDBiometrico:  vinculo.IDBiometrico,
			Ferias:        funcionario.Ferias,
		}, nil
	}

	funcionario, err := s.funcionarios.FindByID(uint(id))
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, ErrFuncionarioNaoEncontrado
	}
	return &Identidade{
		FuncionarioID: funcionario.ID,
		TipoVinculo:   "funcionario_principal",
		Nome:          funcionario.Nome,
		CPF:           funcionario.CPF,
		Email:         funcionario.Email,
		DataAdmissao:  funcionario.DataAdmissao,
		Matricula:     funcionario.Matricula,
		Cargo:         funcionario.Cargo,
		TipoEscala:    funcionario.TipoEscala,
		UnidadeID:     funcionario.UnidadeID,
		IDBiometrico:  funcionario.IDBiometrico,
		Ferias:        funcionario.Ferias,
	}, nil
}

func (s *PontoService) registrarEntrada(tx repository.PontoRepository, ident *Identidade, unidadeID uint, agora time.Time) (*ResultadoPonto, error) {
	horaEntrada := agora.Format("15:04:05")
	data := agora.Format("2006-01-02")

	if s.folha != nil {
		err := s.folha.EnviarRegistro(RegistroFolha{
			FuncionarioID: ident.FuncionarioID,
			UnidadeID:     unidadeID,
			Data:          data,
			HoraEntrada:   horaEntrada,
			HoraSaida:     nil,
			IDBiometrico:  ident.IDBiometrico,
		})
		if err != nil {
			return nil, err
		}
	} else {
		registro := model.RegistroPonto{
			FuncionarioID: ident.FuncionarioID,
			UnidadeID:     unidadeID,
			DataHora:      agora,
			Data:          data,
			HoraEntrada:   horaEntrada,
			IDBiometrico:  ident.IDBiometrico,
		}
		if err := tx.Create(&registro); err != nil {
			return nil, err
		}
	}

	log.Printf("[ENTRADA REGISTRADA] Funcionário: %s (ID: %d) | Unidade: %d | Data/Hora: %s %s",
		ident.Nome, ident.FuncionarioID, unidadeID, data, horaEntrada)

	return &ResultadoPonto{
		TipoPonto:   "entrada",
		TipoVinculo: ident.TipoVinculo,
		Funcionario: ident.Nome,
		Matricula:   ident.Matricula,
		Cargo:       ident.Cargo,
		UnidadeID:   unidadeID,
		DataHora:    agora.Format("02/01/2006 15:04:05"),
		Mensagem: fmt.Sprintf("Registro de entrada realizado com sucesso para funcionario: %s\nComprovante enviado para o e-mail %s",
			ident.Nome, ident.Email),
	}, nil
}

func (s *PontoService) registrarSaida(tx repository.PontoRepository, ident *Identidade, aberto *model.RegistroPonto, agora time.Time) (*ResultadoPonto, error) {
	decorrido := agora.Sub(aberto.DataHora)

	if decorrido < s.IntervaloMinimoSaida {
		minimos := int(s.IntervaloMinimoSaida.Minutes())
		restante := int(s.IntervaloMinimoSaida.Minutes()-decorrido.Minutes()) + 1
		log.Printf("[TENTATIVA BLOQUEADA] Funcionário: %s (ID: %d) | Tempo decorrido: %.2f minutos | Tempo restante: %d minuto(s)",
			ident.Nome, ident.FuncionarioID, decorrido.Minutes(), restante)
		return nil, &ErroAguardeSaida{MinutosMinimos: minimos, MinutosRestantes: restante}
	}

	horaSaida := agora.Format("15:04:05")

	if s.folha != nil {
		err := s.folha.EnviarRegistro(RegistroFolha{
			FuncionarioID: ident.FuncionarioID,
			UnidadeID:     aberto.UnidadeID,
			Data:          aberto.Data,
			HoraEntrada:   aberto.HoraEntrada,
			HoraSaida:     &horaSaida,
			IDBiometrico:  ident.IDBiometrico,
		})
		if err != nil {
			return nil, err
		}
	} else {
		aberto.HoraSaida = horaSaida
		if err := tx.Update(aberto); err != nil {
			return nil, err
		}
	}

	log.Printf("[SAÍDA REGISTRADA] Funcionário: %s (ID: %d) | Unidade: %d | Tempo trabalhado: %.2f minutos",
		ident.Nome, ident.FuncionarioID, aberto.UnidadeID, decorrido.Minutes())

	return &ResultadoPonto{
		TipoPonto:   "saida",
		TipoVinculo: ident.TipoVinculo,
		Funcionario: ident.Nome,
		Matricula:   ident.Matricula,
		Cargo:       ident.Cargo,
		UnidadeID:   aberto.UnidadeID,
		DataHora:    agora.Format("02/01/2006 15:04:05"),
		Duracao:     decorrido,
		Mensagem: fmt.Sprintf("Registro de saida realizado com sucesso para funcionario: %s\nComprovante enviado para o e-mail %s",
			ident.Nome, ident.Email),
	}, nil
}

func (s *PontoService) nomeUnidade(id uint) string {
	unidade, err := s.unidades.FindByID(id)
	if err != nil || unidade == nil {
		return fmt.Sprintf("%d", id)
	}
	return unidade.Nome
}

func (s *PontoService) enviarComprovante(ident *Identidade, resultado *ResultadoPonto) {
	if s.notificador == nil || ident.Email == "" {
		return
	}

	var assunto, corpo string
	if resultado.TipoPonto == "entrada" {
		assunto = "Registro de Entrada - Ponto Registrado"
		corpo = fmt.Sprintf(`Prezado(a) %s,

Este e-mail confirma o registro de seu ponto conforme as informações abaixo:

Entrada registrada com sucesso.

Profissional: %s
Data/Hora: %s

Se precisar de suporte ou tiver dúvidas, entre em contato com a Prefeitura.

Atenciosamente,
Prefeitura de Itaguaí`, ident.Nome, ident.Nome, resultado.DataHora)
	} else {
		horas := int(resultado.Duracao.Hours())
		minutos := int(resultado.Duracao.Minutes()) % 60
		assunto = "Registro de Saída - Ponto Registrado"
		corpo = fmt.Sprintf(`Prezado(a) %s,

Este e-mail confirma o registro de sua saída conforme as informações abaixo:

Saída registrada com sucesso.

Profissional: %s
Data/Hora: %s
Duração do Turno: %dh %dmin

Se precisar de suporte ou tiver dúvidas, entre em contato com a Prefeitura.

Atenciosamente,
Prefeitura de Itaguaí`, ident.Nome, ident.Nome, resultado.DataHora, horas, minutos)
	}

	if err := s.notificador.EnviarComprovante(ident.Email, assunto, corpo); err != nil {
		log.Printf("Erro ao enviar e-mail para %s: %v", ident.Email, err)
		return
	}
	log.Printf("E-mail enviado para %s", ident.Email)
}
