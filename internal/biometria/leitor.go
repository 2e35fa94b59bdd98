package biometria

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Leitor é a superfície do SDK do leitor de digitais (NBioBSP e
// similares). Capture e Enroll devolvem o FIR em texto; FIR vazio
// significa que nenhum dedo foi apresentado.
type Leitor interface {
	Open() error
	Close() error
	Capture() (string, error)
	Enroll(chave string) (string, error)
	SetLED(aceso bool) error
	CheckFinger() bool
}

var (
	// ErrSemDigital indica captura sem dedo no leitor. Recuperável: o
	// terminal pede para tentar de novo.
	ErrSemDigital = errors.New("nenhuma impressão digital capturada")

	// ErrNaoIdentificado indica digital capturada mas sem
	// correspondência no índice.
	ErrNaoIdentificado = errors.New("usuário não identificado")
)

// Gateway serializa todo acesso ao leitor físico. O mutex cobre a
// transação inteira (Open até Close), não só a chamada individual do
// SDK: um ciclo do loop contínuo e um cadastro concorrente nunca se
// entrelaçam no dispositivo.
type Gateway struct {
	mu     sync.Mutex
	leitor Leitor
}

func NovoGateway(leitor Leitor) *Gateway {
	return &Gateway{leitor: leitor}
}

// Capturar abre o leitor, captura uma digital e fecha. FIR vazio vira
// ErrSemDigital. O Close é sempre tentado, mesmo em erro de captura.
func (g *Gateway) Capturar() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.leitor.Open(); err != nil {
		return "", fmt.Errorf("falha ao abrir o leitor biométrico: %w", err)
	}
	defer g.fecharLeitor()

	fir, err := g.leitor.Capture()
	if err != nil {
		return "", fmt.Errorf("falha ao capturar a digital: %w", err)
	}
	if fir == "" {
		return "", ErrSemDigital
	}
	return fir, nil
}

// Cadastrar abre o leitor, registra uma nova digital sob a chave
// informada (matrícula) e devolve o FIR exportado.
func (g *Gateway) Cadastrar(chave string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.leitor.Open(); err != nil {
		return "", fmt.Errorf("falha ao abrir o leitor biométrico: %w", err)
	}
	defer g.fecharLeitor()

	fir, err := g.leitor.Enroll(chave)
	if err != nil {
		return "", fmt.Errorf("falha no cadastro biométrico: %w", err)
	}
	if fir == "" {
		return "", ErrSemDigital
	}
	return fir, nil
}

// DedoPresente consulta o sensor sem segurar o lock além da chamada.
func (g *Gateway) DedoPresente() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.leitor.CheckFinger()
}

// AcenderLED é melhor-esforço: leitor sem LED não derruba o chamador.
func (g *Gateway) AcenderLED(aceso bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.leitor.SetLED(aceso); err != nil {
		// LED não suportado, segue normalmente
		return
	}
}

func (g *Gateway) fecharLeitor() {
	if err := g.leitor.Close(); err != nil {
		log.Printf("[BIOMETRIA] Erro ao fechar o leitor: %v", err)
	}
}
