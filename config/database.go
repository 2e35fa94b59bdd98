package config

import (
	"fmt"

	"biometrico-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Formato: user:password@tcp(host:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "ponto_biometrico"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Falha na conexão com o banco de dados!")
	}

	fmt.Println("Conexão com o banco estabelecida!")

	// Auto Migration: cria as tabelas a partir das structs do model
	db.AutoMigrate(&model.Unidade{})
	db.AutoMigrate(&model.Funcionario{})
	db.AutoMigrate(&model.VinculoAdicional{})
	db.AutoMigrate(&model.RegistroPonto{})
	db.AutoMigrate(&model.Ferias{})
	db.AutoMigrate(&model.Usuario{})

	DB = db
}
