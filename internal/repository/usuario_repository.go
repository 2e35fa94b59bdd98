package repository

import (
	"errors"

	"biometrico-backend/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(u *model.Usuario) error
	FindByEmail(email string) (*model.Usuario, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db}
}

func (r *usuarioRepository) Create(u *model.Usuario) error {
	return r.db.Create(u).Error
}

func (r *usuarioRepository) FindByEmail(email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
