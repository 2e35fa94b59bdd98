package biometria

import (
	"errors"
	"sync"
)

// LeitorSimulado reproduz o comportamento do leitor físico em memória,
// para ambiente de desenvolvimento e testes. A integração com o driver
// do fabricante implementa a mesma interface Leitor e é ligada no
// lugar deste na inicialização.
type LeitorSimulado struct {
	mu       sync.Mutex
	aberto   bool
	led      bool
	dedo     bool
	proximas []string // FIRs que as próximas capturas devolvem
}

func NovoLeitorSimulado() *LeitorSimulado {
	return &LeitorSimulado{}
}

// ApresentarDedo simula o dedo encostado no sensor com a digital dada.
func (l *LeitorSimulado) ApresentarDedo(fir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dedo = true
	l.proximas = append(l.proximas, fir)
}

// RemoverDedo simula a retirada do dedo do sensor.
func (l *LeitorSimulado) RemoverDedo() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dedo = false
}

func (l *LeitorSimulado) Open() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.aberto {
		return errors.New("leitor já aberto")
	}
	l.aberto = true
	return nil
}

func (l *LeitorSimulado) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.aberto = false
	return nil
}

func (l *LeitorSimulado) Capture() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.aberto {
		return "", errors.New("leitor não está aberto")
	}
	if len(l.proximas) == 0 {
		return "", nil // Sem dedo: captura vazia, não é erro de I/O
	}
	fir := l.proximas[0]
	l.proximas = l.proximas[1:]
	return fir, nil
}

// Enroll gera um FIR determinístico a partir da chave, suficiente para
// o fluxo de cadastro fora do leitor real.
func (l *LeitorSimulado) Enroll(chave string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.aberto {
		return "", errors.New("leitor não está aberto")
	}
	return "FIR-" + chave, nil
}

func (l *LeitorSimulado) SetLED(aceso bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.led = aceso
	return nil
}

// LEDAceso expõe o estado do LED para inspeção nos testes.
func (l *LeitorSimulado) LEDAceso() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.led
}

func (l *LeitorSimulado) CheckFinger() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dedo
}
