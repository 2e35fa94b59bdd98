package model

import "gorm.io/gorm"

type Funcionario struct {
	gorm.Model
	UnidadeID    uint   `json:"unidade_id"`
	Nome         string `json:"nome" gorm:"not null"`
	CPF          string `json:"cpf" gorm:"column:cpf;unique;not null"`
	Cargo        string `json:"cargo"`
	Matricula    string `json:"matricula" gorm:"unique;not null"` // Chave usada no cadastro da digital
	TipoEscala   string `json:"tipo_escala"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email" gorm:"unique"`
	DataAdmissao string `json:"data_admissao"` // Formato YYYY-MM-DD
	IDBiometrico string `json:"id_biometrico" gorm:"type:text"` // FIR (template) exportado pelo leitor

	// Relações
	Unidade  Unidade            `json:"unidade" gorm:"foreignKey:UnidadeID"`
	Ferias   []Ferias           `json:"ferias" gorm:"foreignKey:FuncionarioID"`
	Vinculos []VinculoAdicional `json:"vinculos" gorm:"foreignKey:FuncionarioID"`
}
