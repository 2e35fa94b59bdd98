package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biometrico-backend/config"
	"biometrico-backend/internal/biometria"
	"biometrico-backend/internal/repository"
	"biometrico-backend/internal/routes"
	"biometrico-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Iniciando aplicação... Carregando .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema.")
	}

	fmt.Println("2. Conectando ao banco de dados...")
	config.ConnectDB()
	fmt.Println("3. Banco conectado! Preparando o leitor biométrico...")

	funcionarioRepo := repository.NewFuncionarioRepository(config.DB)
	vinculoRepo := repository.NewVinculoRepository(config.DB)
	pontoRepo := repository.NewPontoRepository(config.DB)
	unidadeRepo := repository.NewUnidadeRepository(config.DB)

	// O leitor físico entra aqui quando o SDK do fabricante estiver
	// vinculado. O simulado atende desenvolvimento e homologação.
	leitor := biometria.NovoLeitorSimulado()
	gateway := biometria.NovoGateway(leitor)
	servicoBio := biometria.NovoServico(gateway, funcionarioRepo, vinculoRepo,
		config.GetEnvAsInt("TOLERANCIA_BIOMETRIA", biometria.ToleranciaPadrao))

	mailer := service.NovoMailerSMTP(
		config.GetEnv("MAIL_SERVER", "localhost"),
		config.GetEnvAsInt("MAIL_PORT", 587),
		config.GetEnv("MAIL_USERNAME", ""),
		config.GetEnv("MAIL_PASSWORD", ""),
		config.GetEnv("MAIL_DEFAULT_SENDER", "ponto@itaguai.rj.gov.br"),
		"MARCAÇÃO DE PONTO",
	)

	// Com FOLHA_URL definida, a saída é delegada ao sistema de folha
	// em vez de gravada direto no banco.
	var folha *service.FolhaClient
	if url := config.GetEnv("FOLHA_URL", ""); url != "" {
		folha = service.NovoFolhaClient(url)
	}

	pontoService := service.NovoPontoService(servicoBio, pontoRepo, funcionarioRepo, vinculoRepo, unidadeRepo, mailer, folha)
	if minutos := config.GetEnvAsInt("INTERVALO_MINIMO_SAIDA", 0); minutos > 0 {
		pontoService.IntervaloMinimoSaida = time.Duration(minutos) * time.Minute
	}

	// Loop de identificação contínua para o modo quiosque
	ctx, cancel := context.WithCancel(context.Background())
	loop := biometria.NovoLoop(servicoBio, funcionarioRepo, vinculoRepo)
	loopEncerrado := make(chan struct{})
	go func() {
		loop.Executar(ctx)
		close(loopEncerrado)
	}()

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupPontoRoutes(app, pontoService)
	routes.SetupRegistroRoutes(app, config.DB, servicoBio)
	routes.SetupVinculoRoutes(app, config.DB, servicoBio)
	routes.SetupFeriasRoutes(app, config.DB)
	routes.SetupRelatorioRoutes(app, config.DB)
	routes.SetupUsuarioRoutes(app, config.DB)
	routes.SetupUnidadeRoutes(app, config.DB)

	// Encerramento controlado: para o loop do leitor antes do servidor
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		fmt.Println("Encerrando servidor...")
		cancel()
		app.Shutdown()
	}()

	porta := config.GetEnv("PORT", "5000")
	fmt.Println("4. Servidor pronto! Aguardando requisições na porta :" + porta)
	app.Listen(":" + porta)

	// O loop termina o ciclo corrente e apaga o LED antes do processo
	// morrer
	cancel()
	<-loopEncerrado
}
