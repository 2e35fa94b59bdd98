package repository

import (
	"errors"

	"biometrico-backend/internal/model"

	"gorm.io/gorm"
)

type UnidadeRepository interface {
	Create(u *model.Unidade) error
	FindByID(id uint) (*model.Unidade, error)
	Listar() ([]model.Unidade, error)
}

type unidadeRepository struct {
	db *gorm.DB
}

func NewUnidadeRepository(db *gorm.DB) UnidadeRepository {
	return &unidadeRepository{db}
}

func (r *unidadeRepository) Create(u *model.Unidade) error {
	return r.db.Create(u).Error
}

func (r *unidadeRepository) FindByID(id uint) (*model.Unidade, error) {
	var u model.Unidade
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *unidadeRepository) Listar() ([]model.Unidade, error) {
	var lista []model.Unidade
	err := r.db.Order("nome").Find(&lista).Error
	return lista, err
}
