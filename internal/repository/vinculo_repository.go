package repository

import (
	"errors"

	"biometrico-backend/internal/model"

	"gorm.io/gorm"
)

type VinculoRepository interface {
	Create(v *model.VinculoAdicional) error
	FindAtivoByID(id uint) (*model.VinculoAdicional, error)
	ListarAtivos() ([]model.VinculoAdicional, error)
	MatriculaExiste(matricula string) (bool, error)
}

type vinculoRepository struct {
	db *gorm.DB
}

func NewVinculoRepository(db *gorm.DB) VinculoRepository {
	return &vinculoRepository{db}
}

func (r *vinculoRepository) Create(v *model.VinculoAdicional) error {
	return r.db.Create(v).Error
}

// FindAtivoByID só enxerga vínculos com status ativo. Vínculo
// desativado é tratado como inexistente na identificação.
func (r *vinculoRepository) FindAtivoByID(id uint) (*model.VinculoAdicional, error) {
	var v model.VinculoAdicional
	err := r.db.Where("id = ? AND status = ?", id, true).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vinculoRepository) ListarAtivos() ([]model.VinculoAdicional, error) {
	var lista []model.VinculoAdicional
	err := r.db.Where("status = ? AND id_biometrico <> ''", true).Find(&lista).Error
	return lista, err
}

func (r *vinculoRepository) MatriculaExiste(matricula string) (bool, error) {
	var count int64
	err := r.db.Model(&model.VinculoAdicional{}).Where("matricula = ?", matricula).Count(&count).Error
	return count > 0, err
}
