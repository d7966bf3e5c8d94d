package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/config"
	"github.com/agendalivre/agenda-api/internal/handlers"
	infraRepo "github.com/agendalivre/agenda-api/internal/infra/repository"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/notify"
	ucAgendamento "github.com/agendalivre/agenda-api/internal/usecase/agendamento"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(db)

	notifyLogger := notify.NewLogger(db)
	outbox := notify.NewRedisOutbox(cfg.RedisAddr, cfg.RedisQueue)
	dispatcher := notify.NewDispatcher(outbox, notifyLogger)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTOS
	// ======================================================
	availabilityUC := ucAgendamento.NewGetAvailability(
		agendamentoRepo,
		cfg.GraceHoras,
	)

	createUC := ucAgendamento.NewCreateAgendamento(
		agendamentoRepo,
		dispatcher,
	)

	confirmarUC := ucAgendamento.NewConfirmarAgendamento(
		agendamentoRepo,
		dispatcher,
	)

	concluirUC := ucAgendamento.NewConcluirAgendamento(
		agendamentoRepo,
		dispatcher,
	)

	cancelarUC := ucAgendamento.NewCancelarAgendamento(
		agendamentoRepo,
		dispatcher,
	)

	reagendarUC := ucAgendamento.NewReagendarAgendamento(
		agendamentoRepo,
		dispatcher,
	)

	resolveTokenUC := ucAgendamento.NewResolveToken(agendamentoRepo)

	promoverUC := ucAgendamento.NewPromoverListaEspera(
		agendamentoRepo,
		createUC,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	unidadeHandler := handlers.NewUnidadeHandler(db)

	servicoHandler := handlers.NewServicoHandler(db)
	clienteHandler := handlers.NewClienteHandler(db)
	horarioHandler := handlers.NewHorarioFuncionamentoHandler(db)
	historicoHandler := handlers.NewHistoricoHandler(db)

	agendamentoHandler := handlers.NewAgendamentoHandler(
		db,
		createUC,
		confirmarUC,
		concluirUC,
		cancelarUC,
		reagendarUC,
	)

	listaEsperaHandler := handlers.NewListaEsperaHandler(db, promoverUC)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createUC)
	tokenHandler := handlers.NewTokenHandler(resolveTokenUC, reagendarUC, cancelarUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/servicos", publicHandler.ListServicos)
			publicAPI.GET("/:slug/disponibilidade", publicHandler.Disponibilidade)
			publicAPI.POST("/:slug/agendamentos", publicHandler.CreateAgendamento)

			// Autoatendimento por token (sem login).
			publicAPI.POST("/token", tokenHandler.Resolve)
			publicAPI.POST("/token/reagendar", tokenHandler.Reagendar)
			publicAPI.POST("/token/cancelar", tokenHandler.Cancelar)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/unidade", unidadeHandler.GetMinhaUnidade)
			secured.PATCH("/me/unidade/configuracao", unidadeHandler.UpdateConfiguracao)

			secured.GET("/me/clientes", clienteHandler.List)

			secured.GET("/me/servicos", servicoHandler.List)
			secured.POST("/me/servicos", servicoHandler.Create)
			secured.PATCH("/me/servicos/:id", servicoHandler.Update)

			secured.GET("/me/horarios", horarioHandler.Get)
			secured.PUT("/me/horarios", horarioHandler.Update)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.POST("/me/agendamentos", agendamentoHandler.Create)
			secured.GET("/me/agendamentos", agendamentoHandler.ListByDate)
			secured.GET("/me/agendamentos/mes", agendamentoHandler.ListByMonth)
			secured.PATCH("/me/agendamentos/:id/confirmar", agendamentoHandler.Confirmar)
			secured.PATCH("/me/agendamentos/:id/concluir", agendamentoHandler.Concluir)
			secured.PATCH("/me/agendamentos/:id/cancelar", agendamentoHandler.Cancelar)
			secured.PATCH("/me/agendamentos/:id/reagendar", agendamentoHandler.Reagendar)

			secured.GET("/me/agendamentos/:id/historico", historicoHandler.List)

			// ------------------------------
			// LISTA DE ESPERA
			// ------------------------------
			secured.GET("/me/lista-espera", listaEsperaHandler.List)
			secured.POST("/me/lista-espera", listaEsperaHandler.Create)
			secured.POST("/me/lista-espera/:id/promover", listaEsperaHandler.Promover)
			secured.PATCH("/me/lista-espera/:id/cancelar", listaEsperaHandler.Cancelar)
		}
	}
}
