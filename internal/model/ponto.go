package model

import (
	"time"

	"gorm.io/gorm"
)

// RegistroPonto guarda um ciclo de entrada/saída. HoraSaida vazia
// significa ponto em aberto (entrada registrada, saída pendente).
type RegistroPonto struct {
	gorm.Model
	FuncionarioID uint      `json:"funcionario_id"`
	UnidadeID     uint      `json:"unidade_id"`
	DataHora      time.Time `json:"data_hora"` // Momento da entrada
	Data          string    `json:"data"`      // Formato YYYY-MM-DD
	HoraEntrada   string    `json:"hora_entrada"`
	HoraSaida     string    `json:"hora_saida"`
	IDBiometrico  string    `json:"id_biometrico" gorm:"type:text"`

	// Relações
	Funcionario Funcionario `json:"funcionario" gorm:"foreignKey:FuncionarioID"`
	Unidade     Unidade     `json:"unidade" gorm:"foreignKey:UnidadeID"`
}

// Aberto indica se o registro tem entrada sem saída.
func (r *RegistroPonto) Aberto() bool {
	return r.HoraEntrada != "" && r.HoraSaida == ""
}
