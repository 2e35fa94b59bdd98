package biometria

// VinculoOffset separa identidades de vínculo adicional das de
// funcionário principal dentro do índice: vínculo id k entra como
// VinculoOffset + k. IDs de funcionário ficam sempre abaixo do offset.
const VinculoOffset = 1_000_000

// Comparador decide se duas digitais casam dentro da tolerância. A
// tolerância é o limiar de fuzziness do fabricante; o comparador
// padrão (igualdade exata do FIR em texto) a ignora, e a integração
// com o SDK real liga o matching do fabricante aqui.
type Comparador func(capturada, cadastrada string, tolerancia int) bool

func comparadorExato(capturada, cadastrada string, _ int) bool {
	return capturada == cadastrada
}

type entradaIndex struct {
	fir string
	id  int
}

// IndexSearch é o índice de identificação em memória. Ele é montado do
// zero antes de cada tentativa (nunca atualizado incrementalmente),
// garantindo que reflete o banco do momento da tentativa.
type IndexSearch struct {
	entradas []entradaIndex
	comparar Comparador
}

func NewIndexSearch() *IndexSearch {
	return &IndexSearch{comparar: comparadorExato}
}

// NewIndexSearchCom permite injetar o matching do fabricante.
func NewIndexSearchCom(c Comparador) *IndexSearch {
	return &IndexSearch{comparar: c}
}

// ClearDB descarta todas as entradas. Chamado antes de cada remontagem.
func (ix *IndexSearch) ClearDB() {
	ix.entradas = ix.entradas[:0]
}

// AddFIR associa uma digital a um id numérico (possivelmente com o
// offset de vínculo).
func (ix *IndexSearch) AddFIR(fir string, id int) {
	if fir == "" {
		return
	}
	ix.entradas = append(ix.entradas, entradaIndex{fir: fir, id: id})
}

// IdentifyUser devolve o id associado à digital, ou 0 quando nenhuma
// entrada casa dentro da tolerância.
func (ix *IndexSearch) IdentifyUser(fir string, tolerancia int) int {
	if fir == "" {
		return 0
	}
	for _, e := range ix.entradas {
		if ix.comparar(fir, e.fir, tolerancia) {
			return e.id
		}
	}
	return 0
}

// Tamanho devolve o número de digitais indexadas.
func (ix *IndexSearch) Tamanho() int {
	return len(ix.entradas)
}
