package repository

import (
	"errors"

	"biometrico-backend/internal/model"

	"gorm.io/gorm"
)

type PontoRepository interface {
	Create(r *model.RegistroPonto) error
	Update(r *model.RegistroPonto) error
	// BuscarAberto procura o registro com entrada e sem saída dentro da
	// janela [dataInicio, dataFim] (datas YYYY-MM-DD, inclusivas).
	BuscarAberto(funcionarioID uint, dataInicio, dataFim string) (*model.RegistroPonto, error)
	// BuscarFechado procura um ciclo já completo na mesma janela.
	BuscarFechado(funcionarioID uint, dataInicio, dataFim string) (*model.RegistroPonto, error)
	Listar() ([]model.RegistroPonto, error)
	ListarPorFuncionario(funcionarioID uint) ([]model.RegistroPonto, error)
	// Transaction executa fn com um repositório amarrado à mesma
	// transação, para que buscar-decidir-gravar seja atômico.
	Transaction(fn func(PontoRepository) error) error
}

type pontoRepository struct {
	db *gorm.DB
}

func NewPontoRepository(db *gorm.DB) PontoRepository {
	return &pontoRepository{db}
}

func (r *pontoRepository) Create(reg *model.RegistroPonto) error {
	return r.db.Create(reg).Error
}

func (r *pontoRepository) Update(reg *model.RegistroPonto) error {
	return r.db.Save(reg).Error
}

func (r *pontoRepository) BuscarAberto(funcionarioID uint, dataInicio, dataFim string) (*model.RegistroPonto, error) {
	var reg model.RegistroPonto
	err := r.db.Where("funcionario_id = ? AND data BETWEEN ? AND ? AND hora_entrada <> '' AND hora_saida = ''",
		funcionarioID, dataInicio, dataFim).
		Order("data_hora DESC").First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *pontoRepository) BuscarFechado(funcionarioID uint, dataInicio, dataFim string) (*model.RegistroPonto, error) {
	var reg model.RegistroPonto
	err := r.db.Where("funcionario_id = ? AND data BETWEEN ? AND ? AND hora_entrada <> '' AND hora_saida <> ''",
		funcionarioID, dataInicio, dataFim).
		Order("data_hora DESC").First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *pontoRepository) Listar() ([]model.RegistroPonto, error) {
	var lista []model.RegistroPonto
	err := r.db.Preload("Funcionario").Preload("Unidade").Order("data_hora DESC").Find(&lista).Error
	return lista, err
}

func (r *pontoRepository) ListarPorFuncionario(funcionarioID uint) ([]model.RegistroPonto, error) {
	var lista []model.RegistroPonto
	err := r.db.Where("funcionario_id = ?", funcionarioID).Order("data_hora DESC").Find(&lista).Error
	return lista, err
}

func (r *pontoRepository) Transaction(fn func(PontoRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&pontoRepository{db: tx})
	})
}
