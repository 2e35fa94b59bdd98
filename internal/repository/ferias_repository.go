package repository

import (
	"biometrico-backend/internal/model"

	"gorm.io/gorm"
)

type FeriasRepository interface {
	Create(f *model.Ferias) error
	ListarPorFuncionario(funcionarioID uint) ([]model.Ferias, error)
	Delete(id uint) error
}

type feriasRepository struct {
	db *gorm.DB
}

func NewFeriasRepository(db *gorm.DB) FeriasRepository {
	return &feriasRepository{db}
}

func (r *feriasRepository) Create(f *model.Ferias) error {
	return r.db.Create(f).Error
}

func (r *feriasRepository) ListarPorFuncionario(funcionarioID uint) ([]model.Ferias, error) {
	var lista []model.Ferias
	err := r.db.Where("funcionario_id = ?", funcionarioID).Order("data_inicio").Find(&lista).Error
	return lista, err
}

func (r *feriasRepository) Delete(id uint) error {
	return r.db.Delete(&model.Ferias{}, id).Error
}
