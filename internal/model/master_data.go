package model

import "gorm.io/gorm"

type Unidade struct {
	gorm.Model
	Nome       string `json:"nome" gorm:"unique;not null"`
	Endereco   string `json:"endereco"`
	Secretaria string `json:"secretaria"`
}

// Ferias é um intervalo de férias do funcionário. As datas são
// inclusivas nas duas pontas: ponto bloqueado de DataInicio até
// DataFim.
type Ferias struct {
	gorm.Model
	FuncionarioID uint   `json:"funcionario_id"`
	DataInicio    string `json:"data_inicio" gorm:"not null"` // Formato YYYY-MM-DD
	DataFim       string `json:"data_fim" gorm:"not null"`
}

// Contem verifica se a data (YYYY-MM-DD) cai dentro do intervalo.
// Datas ISO comparam corretamente como string.
func (f *Ferias) Contem(data string) bool {
	return f.DataInicio <= data && data <= f.DataFim
}

// Usuario é o operador do painel (dashboard), não o funcionário que
// bate ponto.
type Usuario struct {
	gorm.Model
	Nome  string `json:"nome"`
	Email string `json:"email" gorm:"unique;not null"`
	Senha string `json:"-"`
	Papel string `json:"papel"` // admin / rh / visualizador
}
