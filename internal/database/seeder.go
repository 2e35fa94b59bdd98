package database

import (
	"log"

	"biometrico-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Unidades
	unidades := []model.Unidade{
		{Nome: "Secretaria de Saúde", Endereco: "Rua General Bocaiúva, 636 - Centro"},
		{Nome: "Hospital São Francisco Xavier", Endereco: "Rua Pref. João Pedro de Almeida, 180"},
		{Nome: "Secretaria de Educação", Endereco: "Av. Prefeito Artur Marques, 100"},
	}
	for i := range unidades {
		db.FirstOrCreate(&unidades[i], model.Unidade{Nome: unidades[i].Nome})
	}

	// 2. Seed usuário admin do painel
	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.Usuario{
		Nome:  "Administrador",
		Email: "admin@itaguai.rj.gov.br",
		Senha: string(hashed),
		Papel: "admin",
	}
	result := db.FirstOrCreate(&admin, model.Usuario{Email: admin.Email})
	if result.Error == nil {
		// Mantém a senha sincronizada com "admin123" mesmo que o usuário já exista
		db.Model(&admin).Update("senha", string(hashed))
		log.Println("Seed do admin concluído!")
	}

	// 3. Seed de funcionários de exemplo com FIRs simulados
	funcionarios := []model.Funcionario{
		{
			Nome:         "Maria da Silva",
			CPF:          "123.456.789-00",
			Cargo:        "Enfermeira",
			Matricula:    "10001",
			UnidadeID:    unidades[0].ID,
			TipoEscala:   "8h",
			Telefone:     "(21) 99999-0001",
			Email:        "maria.silva@itaguai.rj.gov.br",
			DataAdmissao: "2019-03-11",
			IDBiometrico: "FIR-10001",
		},
		{
			Nome:         "João Pereira",
			CPF:          "987.654.321-00",
			Cargo:        "Técnico de Enfermagem",
			Matricula:    "10002",
			UnidadeID:    unidades[1].ID,
			TipoEscala:   "12x36",
			Telefone:     "(21) 99999-0002",
			Email:        "joao.pereira@itaguai.rj.gov.br",
			DataAdmissao: "2021-07-01",
			IDBiometrico: "FIR-10002",
		},
	}
	for i := range funcionarios {
		db.FirstOrCreate(&funcionarios[i], model.Funcionario{Matricula: funcionarios[i].Matricula})
	}

	// 4. Vínculo adicional de exemplo (plantão em outra unidade)
	if len(funcionarios) > 0 && funcionarios[0].ID > 0 {
		vinculo := model.VinculoAdicional{
			FuncionarioID: funcionarios[0].ID,
			UnidadeID:     unidades[1].ID,
			Matricula:     "20001",
			TipoEscala:    "12h",
			Cargo:         "Enfermeira Plantonista",
			// Cada vínculo tem digital própria; FIR repetido deixaria o
			// vínculo inalcançável (funcionários entram primeiro no índice)
			IDBiometrico:  "FIR-20001",
			Status:        true,
		}
		db.FirstOrCreate(&vinculo, model.VinculoAdicional{Matricula: vinculo.Matricula})
	}

	log.Println("Seeding concluído!")
}
