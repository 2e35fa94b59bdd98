package model

import "gorm.io/gorm"

// VinculoAdicional liga um funcionário a uma segunda unidade com
// matrícula e escala próprias. A matrícula é única no sistema inteiro
// (funcionários principais e vínculos juntos).
type VinculoAdicional struct {
	gorm.Model
	FuncionarioID uint   `json:"funcionario_id"`
	UnidadeID     uint   `json:"unidade_id"`
	Matricula     string `json:"matricula" gorm:"unique;not null"`
	TipoEscala    string `json:"tipo_escala"`
	Cargo         string `json:"cargo"`
	IDBiometrico  string `json:"id_biometrico" gorm:"type:text"`
	Status        bool   `json:"status" gorm:"default:true"` // Vínculo ativo/inativo

	// Relações
	Funcionario Funcionario `json:"funcionario" gorm:"foreignKey:FuncionarioID"`
	Unidade     Unidade     `json:"unidade" gorm:"foreignKey:UnidadeID"`
}
