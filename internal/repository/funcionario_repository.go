package repository

import (
	"errors"

	"biometrico-backend/internal/model"

	"gorm.io/gorm"
)

type FuncionarioRepository interface {
	Create(f *model.Funcionario) error
	FindByID(id uint) (*model.Funcionario, error)
	FindByMatricula(matricula string) (*model.Funcionario, error)
	ListarComBiometria() ([]model.Funcionario, error)
	ExisteDuplicado(idBiometrico, cpf, email, matricula, nome string) (bool, error)
	// BiometriaEmUso procura outro funcionário já dono da digital, para
	// barrar colisão na atualização de biometria.
	BiometriaEmUso(idBiometrico string, excetoID uint) (*model.Funcionario, error)
	AtualizarBiometria(id uint, idBiometrico string) error
	Listar() ([]model.Funcionario, error)
}

type funcionarioRepository struct {
	db *gorm.DB
}

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository {
	return &funcionarioRepository{db}
}

func (r *funcionarioRepository) Create(f *model.Funcionario) error {
	return r.db.Create(f).Error
}

func (r *funcionarioRepository) FindByID(id uint) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.Preload("Ferias").First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepository) FindByMatricula(matricula string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.Where("matricula = ?", matricula).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListarComBiometria devolve só quem tem digital cadastrada, usado na
// remontagem do índice antes de cada identificação.
func (r *funcionarioRepository) ListarComBiometria() ([]model.Funcionario, error) {
	var lista []model.Funcionario
	err := r.db.Where("id_biometrico <> ''").Find(&lista).Error
	return lista, err
}

func (r *funcionarioRepository) ExisteDuplicado(idBiometrico, cpf, email, matricula, nome string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Funcionario{}).
		Where("id_biometrico = ? OR cpf = ? OR email = ? OR matricula = ? OR nome = ?",
			idBiometrico, cpf, email, matricula, nome).
		Count(&count).Error
	return count > 0, err
}

func (r *funcionarioRepository) BiometriaEmUso(idBiometrico string, excetoID uint) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.Where("id_biometrico = ? AND id <> ?", idBiometrico, excetoID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepository) AtualizarBiometria(id uint, idBiometrico string) error {
	return r.db.Model(&model.Funcionario{}).Where("id = ?", id).
		Update("id_biometrico", idBiometrico).Error
}

func (r *funcionarioRepository) Listar() ([]model.Funcionario, error) {
	var lista []model.Funcionario
	err := r.db.Preload("Unidade").Order("nome").Find(&lista).Error
	return lista, err
}
