package model

// Tipos de escala aceitos no cadastro.
var TiposEscalaValidos = []string{"8h", "12h", "16h", "24h", "12x36", "24x72", "32h", "20h"}

// TipoEscalaValido confere se a escala informada é uma das aceitas.
func TipoEscalaValido(tipo string) bool {
	for _, t := range TiposEscalaValidos {
		if t == tipo {
			return true
		}
	}
	return false
}

// JanelaDias devolve o tamanho da janela de busca de ponto em aberto
// para a escala. Escalas de turno longo (24h, 12x36, 24x72) podem
// virar a meia-noite, então a saída precisa enxergar a entrada do dia
// anterior. As demais fecham o ciclo no próprio dia.
func JanelaDias(tipoEscala string) int {
	switch tipoEscala {
	case "24h", "12x36", "24x72":
		return 2
	default:
		return 1
	}
}
