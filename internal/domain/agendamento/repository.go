package agendamento

import (
	"context"
	"time"

	"github.com/agendalivre/agenda-api/internal/models"
)

type Repository interface {
	// -------- Unidade / Configuração --------
	GetUnidadeByID(
		ctx context.Context,
		id uint,
	) (*models.Unidade, error)

	GetUnidadeBySlug(
		ctx context.Context,
		slug string,
	) (*models.Unidade, error)

	GetConfiguracao(
		ctx context.Context,
		unidadeID uint,
	) (*models.ConfiguracaoUnidade, error)

	// -------- Catálogo --------
	GetProfissional(
		ctx context.Context,
		unidadeID uint,
		profissionalID uint,
	) (*models.Profissional, error)

	GetServico(
		ctx context.Context,
		unidadeID uint,
		servicoID uint,
	) (*models.Servico, error)

	// -------- Cliente --------
	GetOrCreateCliente(
		ctx context.Context,
		unidadeID uint,
		nome string,
		telefone string,
		email string,
	) (*models.Cliente, error)

	// -------- Disponibilidade --------
	GetHorarioFuncionamento(
		ctx context.Context,
		profissionalID uint,
		diaSemana int,
	) (*models.HorarioFuncionamento, error)

	ListAgendamentosDoDia(
		ctx context.Context,
		profissionalID uint,
		inicio time.Time,
		fim time.Time,
	) ([]models.Agendamento, error)

	// -------- Agendamento (criação) --------
	// Revalida o conflito de horário e grava o histórico na mesma
	// transação do insert.
	CreateAgendamento(
		ctx context.Context,
		ap *models.Agendamento,
		hist *models.HistoricoAgendamento,
	) error

	// -------- Agendamento (leitura) --------
	GetAgendamentoByToken(
		ctx context.Context,
		token string,
	) (*models.Agendamento, error)

	GetAgendamentoDaUnidade(
		ctx context.Context,
		agendamentoID uint,
		unidadeID uint,
	) (*models.Agendamento, error)

	// -------- Agendamento (transições) --------
	// Compare-and-swap por linha: a escrita só acontece se o status atual
	// ainda for statusAnterior; perder a corrida devolve Conflict.
	UpdateStatusAgendamento(
		ctx context.Context,
		ap *models.Agendamento,
		statusAnterior Status,
		hist *models.HistoricoAgendamento,
	) error

	// Reagendar compara status e o retrato de reagendamentos_count lido
	// junto: reagendar devolve o status a pendente, então o status
	// sozinho não distingue duas escritas concorrentes.
	ReagendarAgendamento(
		ctx context.Context,
		ap *models.Agendamento,
		statusAnterior Status,
		novoInicio time.Time,
		hist *models.HistoricoAgendamento,
	) error

	// -------- Lista de espera --------
	GetListaEspera(
		ctx context.Context,
		id uint,
		unidadeID uint,
	) (*models.ListaEspera, error)

	MarcarListaEsperaAgendada(
		ctx context.Context,
		entrada *models.ListaEspera,
		agendamentoID uint,
	) error
}
