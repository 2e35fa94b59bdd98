package biometria

import (
	"context"
	"errors"
	"log"
	"time"

	"biometrico-backend/internal/repository"
)

// IntervaloPoll é o espaçamento entre verificações de dedo no sensor.
const IntervaloPoll = 100 * time.Millisecond

// Loop é o modo contínuo de identificação: fica aguardando dedo no
// leitor, identifica e loga o resultado. Ele disputa o mesmo lock do
// gateway com as requisições de ponto/cadastro: quem pega o leitor
// primeiro conclui a transação inteira antes do outro seguir.
type Loop struct {
	servico      *Servico
	funcionarios repository.FuncionarioRepository
	vinculos     repository.VinculoRepository
	Intervalo    time.Duration // Intervalo de polling; IntervaloPoll por padrão
}

func NovoLoop(servico *Servico, funcionarios repository.FuncionarioRepository, vinculos repository.VinculoRepository) *Loop {
	return &Loop{
		servico:      servico,
		funcionarios: funcionarios,
		vinculos:     vinculos,
		Intervalo:    IntervaloPoll,
	}
}

// Executar roda até o contexto ser cancelado. Qualquer erro dentro de
// um ciclo é logado e o loop segue para o próximo; o encerramento é
// cooperativo (termina o ciclo corrente, apaga o LED e libera o
// leitor).
func (l *Loop) Executar(ctx context.Context) {
	log.Println("[IDENTIFY] Modo contínuo de identificação iniciado.")
	gateway := l.servico.Gateway()

	gateway.AcenderLED(true)
	defer gateway.AcenderLED(false)

	for {
		select {
		case <-ctx.Done():
			log.Println("[IDENTIFY] Modo contínuo encerrado.")
			return
		default:
		}
		l.ciclo(ctx)
	}
}

func (l *Loop) ciclo(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[IDENTIFY] Pânico no ciclo de identificação: %v", r)
		}
	}()

	gateway := l.servico.Gateway()

	// 1. Aguarda dedo no leitor
	if !l.aguardarDedo(ctx, true) {
		return
	}

	// 2. Remonta o índice, captura e identifica
	id, err := l.servico.Identificar()
	switch {
	case errors.Is(err, ErrSemDigital):
		log.Println("[IDENTIFY] Nenhuma digital capturada.")
	case errors.Is(err, ErrNaoIdentificado):
		log.Println("[IDENTIFY] Usuário não identificado.")
	case err != nil:
		log.Printf("[IDENTIFY] Erro no ciclo de identificação: %v", err)
	default:
		l.logarIdentificado(id)
	}

	// 3. Espera o dedo ser removido antes de permitir novo ciclo
	if !l.aguardarDedo(ctx, false) {
		return
	}

	// Garante que o LED permaneça aceso após cada ciclo
	gateway.AcenderLED(true)
}

// aguardarDedo espera o sensor reportar presença (ou ausência) de
// dedo, respeitando o cancelamento. Devolve false quando o contexto
// morre no meio da espera.
func (l *Loop) aguardarDedo(ctx context.Context, presente bool) bool {
	gateway := l.servico.Gateway()
	for gateway.DedoPresente() != presente {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(l.Intervalo):
		}
	}
	return true
}

func (l *Loop) logarIdentificado(id int) {
	if id >= VinculoOffset {
		vinculo, err := l.vinculos.FindAtivoByID(uint(id - VinculoOffset))
		if err != nil || vinculo == nil {
			log.Printf("[IDENTIFY] Vínculo %d identificado mas não encontrado no banco.", id-VinculoOffset)
			return
		}
		log.Printf("[IDENTIFY] Vínculo adicional identificado: matrícula %s | Unidade: %d", vinculo.Matricula, vinculo.UnidadeID)
		return
	}

	funcionario, err := l.funcionarios.FindByID(uint(id))
	if err != nil || funcionario == nil {
		log.Printf("[IDENTIFY] Funcionário com ID %d não encontrado no banco de dados.", id)
		return
	}
	log.Printf("[IDENTIFY] Usuário identificado: %s (ID: %d) | Matrícula: %s | Unidade: %d",
		funcionario.Nome, id, funcionario.Matricula, funcionario.UnidadeID)
}
