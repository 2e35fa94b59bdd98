package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biometrico-backend/internal/biometria"
	"biometrico-backend/internal/model"
	"biometrico-backend/internal/repository"
)

type identificadorFake struct {
	id  int
	err error
}

func (i *identificadorFake) Identificar() (int, error) { return i.id, i.err }

type pontoRepoFake struct {
	registros []model.RegistroPonto
	proximoID uint
}

func (p *pontoRepoFake) Create(r *model.RegistroPonto) error {
	p.proximoID++
	r.ID = p.proximoID
	p.registros = append(p.registros, *r)
	return nil
}

func (p *pontoRepoFake) Update(r *model.RegistroPonto) error {
	for i := range p.registros {
		if p.registros[i].ID == r.ID {
			p.registros[i] = *r
			return nil
		}
	}
	return errors.New("registro não encontrado")
}

func (p *pontoRepoFake) buscar(funcionarioID uint, dataInicio, dataFim string, aberto bool) *model.RegistroPonto {
	var achado *model.RegistroPonto
	for i := range p.registros {
		r := &p.registros[i]
		if r.FuncionarioID != funcionarioID || r.Data < dataInicio || r.Data > dataFim {
			continue
		}
		if r.HoraEntrada == "" {
			continue
		}
		if aberto != (r.HoraSaida == "") {
			continue
		}
		if achado == nil || r.DataHora.After(achado.DataHora) {
			achado = r
		}
	}
	if achado == nil {
		return nil
	}
	copia := *achado
	return &copia
}

func (p *pontoRepoFake) BuscarAberto(funcionarioID uint, dataInicio, dataFim string) (*model.RegistroPonto, error) {
	return p.buscar(funcionarioID, dataInicio, dataFim, true), nil
}

func (p *pontoRepoFake) BuscarFechado(funcionarioID uint, dataInicio, dataFim string) (*model.RegistroPonto, error) {
	return p.buscar(funcionarioID, dataInicio, dataFim, false), nil
}

func (p *pontoRepoFake) Listar() ([]model.RegistroPonto, error) { return p.registros, nil }

func (p *pontoRepoFake) ListarPorFuncionario(funcionarioID uint) ([]model.RegistroPonto, error) {
	var res []model.RegistroPonto
	for _, r := range p.registros {
		if r.FuncionarioID == funcionarioID {
			res = append(res, r)
		}
	}
	return res, nil
}

func (p *pontoRepoFake) Transaction(fn func(tx repository.PontoRepository) error) error {
	return fn(p)
}

type funcionarioRepoFake struct {
	funcionarios map[uint]*model.Funcionario
}

func (f *funcionarioRepoFake) Create(*model.Funcionario) error { return nil }

func (f *funcionarioRepoFake) FindByID(id uint) (*model.Funcionario, error) {
	return f.funcionarios[id], nil
}

func (f *funcionarioRepoFake) FindByMatricula(string) (*model.Funcionario, error) { return nil, nil }

func (f *funcionarioRepoFake) ListarComBiometria() ([]model.Funcionario, error) { return nil, nil }

func (f *funcionarioRepoFake) ExisteDuplicado(idBiometrico, cpf, email, matricula, nome string) (bool, error) {
	return false, nil
}

func (f *funcionarioRepoFake) BiometriaEmUso(idBiometrico string, excetoID uint) (*model.Funcionario, error) {
	return nil, nil
}

func (f *funcionarioRepoFake) AtualizarBiometria(id uint, idBiometrico string) error { return nil }

func (f *funcionarioRepoFake) Listar() ([]model.Funcionario, error) { return nil, nil }

type vinculoRepoFake struct {
	vinculos map[uint]*model.VinculoAdicional
}

func (v *vinculoRepoFake) Create(*model.VinculoAdicional) error { return nil }

func (v *vinculoRepoFake) FindAtivoByID(id uint) (*model.VinculoAdicional, error) {
	vinculo := v.vinculos[id]
	if vinculo == nil || !vinculo.Status {
		return nil, nil
	}
	return vinculo, nil
}

func (v *vinculoRepoFake) ListarAtivos() ([]model.VinculoAdicional, error) { return nil, nil }

func (v *vinculoRepoFake) MatriculaExiste(string) (bool, error) { return false, nil }

type unidadeRepoFake struct {
	unidades map[uint]*model.Unidade
}

func (u *unidadeRepoFake) Create(*model.Unidade) error { return nil }

func (u *unidadeRepoFake) FindByID(id uint) (*model.Unidade, error) { return u.unidades[id], nil }

func (u *unidadeRepoFake) Listar() ([]model.Unidade, error) { return nil, nil }

type notificadorFake struct {
	enviados []string
	erro     error
}

func (n *notificadorFake) EnviarComprovante(destinatario, assunto, corpo string) error {
	if n.erro != nil {
		return n.erro
	}
	n.enviados = append(n.enviados, destinatario)
	return nil
}

// ambiente monta o serviço com todos os fakes e um relógio fixo.
type ambiente struct {
	servico      *PontoService
	identidade   *identificadorFake
	pontos       *pontoRepoFake
	notificador  *notificadorFake
	funcionarios *funcionarioRepoFake
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()

	funcionario := &model.Funcionario{
		Nome:         "Maria da Silva",
		CPF:          "123.456.789-00",
		Cargo:        "Enfermeira",
		Matricula:    "10001",
		UnidadeID:    1,
		TipoEscala:   "8h",
		Email:        "maria@itaguai.rj.gov.br",
		IDBiometrico: "FIR-10001",
	}
	funcionario.ID = 1

	vinculo := &model.VinculoAdicional{
		FuncionarioID: 1,
		UnidadeID:     2,
		Matricula:     "20001",
		TipoEscala:    "12x36",
		Cargo:         "Plantonista",
		IDBiometrico:  "FIR-10001",
		Status:        true,
	}
	vinculo.ID = 1

	hospital := &model.Unidade{Nome: "Hospital São Francisco Xavier"}
	hospital.ID = 2
	saude := &model.Unidade{Nome: "Secretaria de Saúde"}
	saude.ID = 1

	env := &ambiente{
		identidade:  &identificadorFake{id: 1},
		pontos:      &pontoRepoFake{},
		notificador: &notificadorFake{},
		funcionarios: &funcionarioRepoFake{funcionarios: map[uint]*model.Funcionario{
			1: funcionario,
		}},
	}
	env.servico = NovoPontoService(
		env.identidade,
		env.pontos,
		env.funcionarios,
		&vinculoRepoFake{vinculos: map[uint]*model.VinculoAdicional{1: vinculo}},
		&unidadeRepoFake{unidades: map[uint]*model.Unidade{1: saude, 2: hospital}},
		env.notificador,
		nil,
	)
	env.servico.Agora = func() time.Time {
		return time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	}
	return env
}

func (a *ambiente) avancarRelogio(d time.Duration) {
	base := a.servico.Agora()
	a.servico.Agora = func() time.Time { return base.Add(d) }
}

func TestRegistrarPontoEntrada(t *testing.T) {
	env := novoAmbiente(t)

	resultado, err := env.servico.RegistrarPonto(1)
	if err != nil {
		t.Fatalf("RegistrarPonto() erro inesperado: %v", err)
	}
	if resultado.TipoPonto != "entrada" {
		t.Errorf("TipoPonto = %q, esperado entrada", resultado.TipoPonto)
	}
	if resultado.TipoVinculo != "funcionario_principal" {
		t.Errorf("TipoVinculo = %q, esperado funcionario_principal", resultado.TipoVinculo)
	}
	if len(env.pontos.registros) != 1 {
		t.Fatalf("registros gravados = %d, esperado 1", len(env.pontos.registros))
	}
	reg := env.pontos.registros[0]
	if reg.HoraEntrada != "08:00:00" || reg.HoraSaida != "" {
		t.Errorf("registro = entrada %q saída %q, esperado entrada 08:00:00 e saída vazia", reg.HoraEntrada, reg.HoraSaida)
	}
	if reg.Data != "2026-03-10" {
		t.Errorf("Data = %q, esperado 2026-03-10", reg.Data)
	}
	if len(env.notificador.enviados) != 1 {
		t.Errorf("comprovantes enviados = %d, esperado 1", len(env.notificador.enviados))
	}
}

func TestRegistrarPontoSaida(t *testing.T) {
	env := novoAmbiente(t)

	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("entrada: %v", err)
	}

	env.avancarRelogio(8 * time.Hour)
	resultado, err := env.servico.RegistrarPonto(1)
	if err != nil {
		t.Fatalf("saída: %v", err)
	}
	if resultado.TipoPonto != "saida" {
		t.Errorf("TipoPonto = %q, esperado saida", resultado.TipoPonto)
	}
	if resultado.Duracao != 8*time.Hour {
		t.Errorf("Duracao = %v, esperado 8h", resultado.Duracao)
	}
	if len(env.pontos.registros) != 1 {
		t.Fatalf("registros = %d, a saída deve fechar o registro aberto, nunca criar outro", len(env.pontos.registros))
	}
	if env.pontos.registros[0].HoraSaida != "16:00:00" {
		t.Errorf("HoraSaida = %q, esperado 16:00:00", env.pontos.registros[0].HoraSaida)
	}
}

func TestRegistrarPontoSaidaAntesDoIntervalo(t *testing.T) {
	env := novoAmbiente(t)

	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("entrada: %v", err)
	}

	env.avancarRelogio(2 * time.Minute)
	_, err := env.servico.RegistrarPonto(1)

	var aguarde *ErroAguardeSaida
	if !errors.As(err, &aguarde) {
		t.Fatalf("erro = %v, esperado ErroAguardeSaida", err)
	}
	if aguarde.MinutosMinimos != 5 {
		t.Errorf("MinutosMinimos = %d, esperado 5", aguarde.MinutosMinimos)
	}
	if aguarde.MinutosRestantes != 4 {
		t.Errorf("MinutosRestantes = %d, esperado 4 (3 minutos faltando, arredondado para cima)", aguarde.MinutosRestantes)
	}
	// A rejeição não altera o registro aberto
	if env.pontos.registros[0].HoraSaida != "" {
		t.Error("registro foi fechado em uma tentativa bloqueada")
	}
}

func TestRegistrarPontoSaidaJaRegistrada(t *testing.T) {
	env := novoAmbiente(t)

	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("entrada: %v", err)
	}
	env.avancarRelogio(8 * time.Hour)
	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("saída: %v", err)
	}

	env.avancarRelogio(time.Hour)
	_, err := env.servico.RegistrarPonto(1)

	var fechado *ErroSaidaJaRegistrada
	if !errors.As(err, &fechado) {
		t.Fatalf("erro = %v, esperado ErroSaidaJaRegistrada", err)
	}
	if fechado.Data != "10/03/2026" {
		t.Errorf("Data = %q, esperado 10/03/2026", fechado.Data)
	}
	if len(env.pontos.registros) != 1 {
		t.Errorf("registros = %d, ciclo fechado não aceita nova gravação", len(env.pontos.registros))
	}
}

func TestRegistrarPontoUnidadeDiferente(t *testing.T) {
	env := novoAmbiente(t)

	_, err := env.servico.RegistrarPonto(2)

	var unidade *ErroUnidadeDiferente
	if !errors.As(err, &unidade) {
		t.Fatalf("erro = %v, esperado ErroUnidadeDiferente", err)
	}
	if unidade.UnidadeFuncionario != "Secretaria de Saúde" {
		t.Errorf("UnidadeFuncionario = %q", unidade.UnidadeFuncionario)
	}
	if unidade.UnidadeTerminal != "Hospital São Francisco Xavier" {
		t.Errorf("UnidadeTerminal = %q", unidade.UnidadeTerminal)
	}
	if len(env.pontos.registros) != 0 {
		t.Error("acesso negado não pode gravar registro")
	}
}

func TestRegistrarPontoFeriasInclusivas(t *testing.T) {
	env := novoAmbiente(t)
	// Hoje (2026-03-10) é o último dia de férias: ainda bloqueado
	env.funcionarios.funcionarios[1].Ferias = []model.Ferias{
		{FuncionarioID: 1, DataInicio: "2026-03-01", DataFim: "2026-03-10"},
	}

	if _, err := env.servico.RegistrarPonto(1); !errors.Is(err, ErrDeFerias) {
		t.Fatalf("erro = %v, esperado ErrDeFerias no último dia de férias", err)
	}
	if len(env.pontos.registros) != 0 {
		t.Error("ponto gravado durante férias")
	}

	// No dia seguinte o ponto volta a ser aceito
	env.avancarRelogio(24 * time.Hour)
	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("dia seguinte às férias: %v", err)
	}
}

func TestRegistrarPontoNaoIdentificado(t *testing.T) {
	env := novoAmbiente(t)
	env.identidade.err = biometria.ErrNaoIdentificado

	if _, err := env.servico.RegistrarPonto(1); !errors.Is(err, biometria.ErrNaoIdentificado) {
		t.Fatalf("erro = %v, esperado ErrNaoIdentificado", err)
	}
	if len(env.pontos.registros) != 0 {
		t.Error("tentativa não identificada gravou registro")
	}
	if len(env.notificador.enviados) != 0 {
		t.Error("tentativa não identificada enviou comprovante")
	}
}

func TestRegistrarPontoUnidadeObrigatoria(t *testing.T) {
	env := novoAmbiente(t)

	if _, err := env.servico.RegistrarPonto(0); !errors.Is(err, ErrUnidadeObrigatoria) {
		t.Fatalf("erro = %v, esperado ErrUnidadeObrigatoria", err)
	}
}

func TestRegistrarPontoVinculoAdicional(t *testing.T) {
	env := novoAmbiente(t)
	env.identidade.id = biometria.VinculoOffset + 1

	resultado, err := env.servico.RegistrarPonto(2)
	if err != nil {
		t.Fatalf("RegistrarPonto() erro inesperado: %v", err)
	}
	if resultado.TipoVinculo != "vinculo_adicional" {
		t.Errorf("TipoVinculo = %q, esperado vinculo_adicional", resultado.TipoVinculo)
	}
	if resultado.Matricula != "20001" {
		t.Errorf("Matricula = %q, esperado a matrícula do vínculo", resultado.Matricula)
	}
	// O registro fica sob o funcionário principal, na unidade do vínculo
	reg := env.pontos.registros[0]
	if reg.FuncionarioID != 1 || reg.UnidadeID != 2 {
		t.Errorf("registro funcionário %d unidade %d, esperado 1 e 2", reg.FuncionarioID, reg.UnidadeID)
	}
}

func TestRegistrarPontoVinculoInexistente(t *testing.T) {
	env := novoAmbiente(t)
	env.identidade.id = biometria.VinculoOffset + 99

	if _, err := env.servico.RegistrarPonto(2); !errors.Is(err, ErrVinculoNaoEncontrado) {
		t.Fatalf("erro = %v, esperado ErrVinculoNaoEncontrado", err)
	}
}

func TestRegistrarPontoJanelaEstendida(t *testing.T) {
	// Escala 12x36: entrada às 20h de ontem fecha com a saída de hoje
	// de manhã, mesmo tendo virado a meia-noite.
	env := novoAmbiente(t)
	env.funcionarios.funcionarios[1].TipoEscala = "12x36"

	env.servico.Agora = func() time.Time {
		return time.Date(2026, 3, 9, 20, 0, 0, 0, time.Local)
	}
	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("entrada noturna: %v", err)
	}

	env.servico.Agora = func() time.Time {
		return time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	}
	resultado, err := env.servico.RegistrarPonto(1)
	if err != nil {
		t.Fatalf("saída na manhã seguinte: %v", err)
	}
	if resultado.TipoPonto != "saida" {
		t.Fatalf("TipoPonto = %q, esperado saida fechando a entrada de ontem", resultado.TipoPonto)
	}
	if resultado.Duracao != 12*time.Hour {
		t.Errorf("Duracao = %v, esperado 12h", resultado.Duracao)
	}
	if len(env.pontos.registros) != 1 {
		t.Errorf("registros = %d, esperado 1", len(env.pontos.registros))
	}
}

func TestRegistrarPontoJanelaDiariaNaoEnxergaOntem(t *testing.T) {
	// Escala 8h: entrada aberta ontem fica fora da janela de hoje, e o
	// toque de hoje abre um ciclo novo.
	env := novoAmbiente(t)

	env.servico.Agora = func() time.Time {
		return time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)
	}
	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("entrada de ontem: %v", err)
	}

	env.servico.Agora = func() time.Time {
		return time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	}
	resultado, err := env.servico.RegistrarPonto(1)
	if err != nil {
		t.Fatalf("toque de hoje: %v", err)
	}
	if resultado.TipoPonto != "entrada" {
		t.Errorf("TipoPonto = %q, esperado nova entrada", resultado.TipoPonto)
	}
	if len(env.pontos.registros) != 2 {
		t.Errorf("registros = %d, esperado 2", len(env.pontos.registros))
	}
}

func TestRegistrarPontoEntradaDelegadaAFolha(t *testing.T) {
	// Com a folha configurada, a entrada vai por HTTP e nada é gravado
	// no banco local.
	var recebido RegistroFolha
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&recebido)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	env := novoAmbiente(t)
	env.servico.folha = NovoFolhaClient(srv.URL)

	resultado, err := env.servico.RegistrarPonto(1)
	if err != nil {
		t.Fatalf("RegistrarPonto() erro inesperado: %v", err)
	}
	if resultado.TipoPonto != "entrada" {
		t.Errorf("TipoPonto = %q, esperado entrada", resultado.TipoPonto)
	}
	if len(env.pontos.registros) != 0 {
		t.Errorf("registros locais = %d, a gravação delegada não pode escrever no banco", len(env.pontos.registros))
	}
	if recebido.FuncionarioID != 1 || recebido.Data != "2026-03-10" || recebido.HoraEntrada != "08:00:00" {
		t.Errorf("payload da folha = %+v", recebido)
	}
	if recebido.HoraSaida != nil {
		t.Errorf("hora_saida = %v, esperado null na entrada", recebido.HoraSaida)
	}
}

func TestRegistrarPontoSaidaDelegadaAFolha(t *testing.T) {
	var recebido RegistroFolha
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&recebido)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	env := novoAmbiente(t)
	agora := env.servico.Agora()
	aberto := model.RegistroPonto{
		FuncionarioID: 1,
		UnidadeID:     1,
		DataHora:      agora.Add(-8 * time.Hour),
		Data:          agora.Format("2006-01-02"),
		HoraEntrada:   "00:00:00",
		IDBiometrico:  "FIR-10001",
	}
	env.pontos.Create(&aberto)
	env.servico.folha = NovoFolhaClient(srv.URL)

	resultado, err := env.servico.RegistrarPonto(1)
	if err != nil {
		t.Fatalf("saída delegada: %v", err)
	}
	if resultado.TipoPonto != "saida" {
		t.Errorf("TipoPonto = %q, esperado saida", resultado.TipoPonto)
	}
	// O fechamento vive na folha; o registro local fica intocado
	if env.pontos.registros[0].HoraSaida != "" {
		t.Errorf("HoraSaida local = %q, o caminho delegado não pode alterar o banco", env.pontos.registros[0].HoraSaida)
	}
	if recebido.HoraSaida == nil || *recebido.HoraSaida != "08:00:00" {
		t.Errorf("hora_saida enviada = %v, esperado 08:00:00", recebido.HoraSaida)
	}
}

func TestRegistrarPontoFolhaRejeitaNaoGrava(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("matrícula sem contrato vigente"))
	}))
	defer srv.Close()

	env := novoAmbiente(t)
	env.servico.folha = NovoFolhaClient(srv.URL)

	_, err := env.servico.RegistrarPonto(1)

	var folha *ErroFolha
	if !errors.As(err, &folha) {
		t.Fatalf("erro = %v, esperado ErroFolha", err)
	}
	if folha.Status != http.StatusUnprocessableEntity || folha.Corpo != "matrícula sem contrato vigente" {
		t.Errorf("ErroFolha = %+v, esperado status e corpo originais", folha)
	}
	if len(env.pontos.registros) != 0 {
		t.Error("folha rejeitou e mesmo assim houve gravação local")
	}
	if len(env.notificador.enviados) != 0 {
		t.Error("comprovante enviado para um ponto que não foi aceito")
	}
}

func TestComprovanteNaoDesfazPonto(t *testing.T) {
	env := novoAmbiente(t)
	env.notificador.erro = errors.New("smtp fora do ar")

	if _, err := env.servico.RegistrarPonto(1); err != nil {
		t.Fatalf("falha de e-mail não pode derrubar o registro: %v", err)
	}
	if len(env.pontos.registros) != 1 {
		t.Errorf("registros = %d, esperado 1", len(env.pontos.registros))
	}
}

func TestIdentificarSemRegistrar(t *testing.T) {
	env := novoAmbiente(t)

	ident, err := env.servico.Identificar()
	if err != nil {
		t.Fatalf("Identificar() erro inesperado: %v", err)
	}
	if ident.Nome != "Maria da Silva" {
		t.Errorf("Nome = %q", ident.Nome)
	}
	if len(env.pontos.registros) != 0 {
		t.Error("Identificar() gravou registro de ponto")
	}
}
