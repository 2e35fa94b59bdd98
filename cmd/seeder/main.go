package main

import (
	"fmt"
	"log"

	"biometrico-backend/config"
	"biometrico-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Iniciando seed do banco de dados...")

	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema.")
	}

	config.ConnectDB()

	database.SeedAll(config.DB)

	fmt.Println("Seed finalizado!")
}
