package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// Condição de sobreposição binária sobre [inicio, inicio+duracao).
const overlapCond = "profissional_id = ? AND status <> 'cancelado' AND inicio < ? AND inicio + make_interval(mins => duracao_min) > ?"

// --------------------------------------------------
// Unidade / Configuração
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetUnidadeByID(
	ctx context.Context,
	id uint,
) (*models.Unidade, error) {

	var unidade models.Unidade
	if err := r.db.WithContext(ctx).First(&unidade, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("unidade_nao_encontrada")
		}
		return nil, err
	}
	return &unidade, nil
}

func (r *AgendamentoGormRepository) GetUnidadeBySlug(
	ctx context.Context,
	slug string,
) (*models.Unidade, error) {

	var unidade models.Unidade
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&unidade).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("unidade_nao_encontrada")
		}
		return nil, err
	}
	return &unidade, nil
}

func (r *AgendamentoGormRepository) GetConfiguracao(
	ctx context.Context,
	unidadeID uint,
) (*models.ConfiguracaoUnidade, error) {

	var cfg models.ConfiguracaoUnidade
	if err := r.db.WithContext(ctx).
		Where("unidade_id = ?", unidadeID).
		First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("unidade_nao_encontrada")
		}
		return nil, err
	}
	return &cfg, nil
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetProfissional(
	ctx context.Context,
	unidadeID uint,
	profissionalID uint,
) (*models.Profissional, error) {

	var prof models.Profissional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND unidade_id = ?", profissionalID, unidadeID).
		First(&prof).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("profissional_nao_encontrado")
		}
		return nil, err
	}
	return &prof, nil
}

func (r *AgendamentoGormRepository) GetServico(
	ctx context.Context,
	unidadeID uint,
	servicoID uint,
) (*models.Servico, error) {

	var servico models.Servico
	if err := r.db.WithContext(ctx).
		Where("id = ? AND unidade_id = ?", servicoID, unidadeID).
		First(&servico).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("servico_nao_encontrado")
		}
		return nil, err
	}
	return &servico, nil
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetOrCreateCliente(
	ctx context.Context,
	unidadeID uint,
	nome string,
	telefone string,
	email string,
) (*models.Cliente, error) {

	var cliente models.Cliente
	err := r.db.WithContext(ctx).
		Where("unidade_id = ? AND telefone = ?", unidadeID, telefone).
		First(&cliente).Error

	if err == nil {
		return &cliente, nil
	}

	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cliente = models.Cliente{
		UnidadeID: unidadeID,
		Nome:      nome,
		Telefone:  telefone,
		Email:     email,
	}

	if err := r.db.WithContext(ctx).Create(&cliente).Error; err != nil {
		return nil, err
	}

	return &cliente, nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetHorarioFuncionamento(
	ctx context.Context,
	profissionalID uint,
	diaSemana int,
) (*models.HorarioFuncionamento, error) {

	var horario models.HorarioFuncionamento
	if err := r.db.WithContext(ctx).
		Where("profissional_id = ? AND dia_semana = ?", profissionalID, diaSemana).
		First(&horario).Error; err != nil {
		return nil, err
	}

	return &horario, nil
}

func (r *AgendamentoGormRepository) ListAgendamentosDoDia(
	ctx context.Context,
	profissionalID uint,
	inicio time.Time,
	fim time.Time,
) ([]models.Agendamento, error) {

	var aps []models.Agendamento
	if err := r.db.WithContext(ctx).
		Select("inicio", "duracao_min").
		Where(
			"profissional_id = ? AND status <> 'cancelado' AND inicio >= ? AND inicio < ?",
			profissionalID, inicio, fim,
		).
		Order("inicio ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Agendamento (criação)
// --------------------------------------------------

func (r *AgendamentoGormRepository) CreateAgendamento(
	ctx context.Context,
	ap *models.Agendamento,
	hist *models.HistoricoAgendamento,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Lock de advisory por profissional: FOR UPDATE não barra um
		// insert concorrente de linha que ainda não existe, então a
		// seção checagem+insert inteira é serializada pela agenda.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			int64(ap.ProfissionalID),
		).Error; err != nil {
			return err
		}

		var conflitos []models.Agendamento
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(overlapCond, ap.ProfissionalID, ap.Fim(), ap.Inicio).
			Find(&conflitos).Error; err != nil {
			return err
		}

		if len(conflitos) > 0 {
			return httperr.ErrConflict("conflito_de_horario")
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		hist.AgendamentoID = ap.ID
		return tx.Create(hist).Error
	})
}

// --------------------------------------------------
// Agendamento (leitura)
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetAgendamentoByToken(
	ctx context.Context,
	token string,
) (*models.Agendamento, error) {

	var ap models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Unidade").
		Preload("Profissional").
		Preload("Servico").
		Preload("Cliente").
		Where("token_acesso = ?", token).
		First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("token_invalido")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AgendamentoGormRepository) GetAgendamentoDaUnidade(
	ctx context.Context,
	agendamentoID uint,
	unidadeID uint,
) (*models.Agendamento, error) {

	var ap models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servico").
		Where("id = ? AND unidade_id = ?", agendamentoID, unidadeID).
		First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("agendamento_nao_encontrado")
		}
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Agendamento (transições)
// --------------------------------------------------

func (r *AgendamentoGormRepository) UpdateStatusAgendamento(
	ctx context.Context,
	ap *models.Agendamento,
	statusAnterior domain.Status,
	hist *models.HistoricoAgendamento,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Agendamento{}).
			Where("id = ? AND status = ?", ap.ID, string(statusAnterior)).
			Updates(map[string]any{
				"status":       ap.Status,
				"cancelado_em": ap.CanceladoEm,
				"concluido_em": ap.ConcluidoEm,
			})

		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return httperr.ErrConflict("conflito_de_status")
		}

		return tx.Create(hist).Error
	})
}

func (r *AgendamentoGormRepository) ReagendarAgendamento(
	ctx context.Context,
	ap *models.Agendamento,
	statusAnterior domain.Status,
	novoInicio time.Time,
	hist *models.HistoricoAgendamento,
) error {

	novoFim := novoInicio.Add(time.Duration(ap.DuracaoMin) * time.Minute)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Mesma serialização por profissional da criação.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			int64(ap.ProfissionalID),
		).Error; err != nil {
			return err
		}

		var conflitos []models.Agendamento
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(overlapCond, ap.ProfissionalID, novoFim, novoInicio).
			Where("id <> ?", ap.ID).
			Find(&conflitos).Error; err != nil {
			return err
		}

		if len(conflitos) > 0 {
			return httperr.ErrConflict("conflito_de_horario")
		}

		// Status sozinho não basta: reagendar escreve pendente de volta,
		// então dois reagendamentos de um pendente passariam os dois. O
		// retrato do contador distingue as duas escritas.
		res := tx.Model(&models.Agendamento{}).
			Where(
				"id = ? AND status = ? AND reagendamentos_count = ?",
				ap.ID, string(statusAnterior), ap.ReagendamentosCount,
			).
			Updates(map[string]any{
				"inicio":               novoInicio,
				"status":               string(domain.StatusPendente),
				"reagendamentos_count": gorm.Expr("reagendamentos_count + 1"),
			})

		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return httperr.ErrConflict("conflito_de_status")
		}

		ap.Inicio = novoInicio
		ap.Status = string(domain.StatusPendente)
		ap.ReagendamentosCount++

		return tx.Create(hist).Error
	})
}

// --------------------------------------------------
// Lista de espera
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetListaEspera(
	ctx context.Context,
	id uint,
	unidadeID uint,
) (*models.ListaEspera, error) {

	var entrada models.ListaEspera
	if err := r.db.WithContext(ctx).
		Preload("Servico").
		Where("id = ? AND unidade_id = ?", id, unidadeID).
		First(&entrada).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("lista_espera_nao_encontrada")
		}
		return nil, err
	}

	return &entrada, nil
}

func (r *AgendamentoGormRepository) MarcarListaEsperaAgendada(
	ctx context.Context,
	entrada *models.ListaEspera,
	agendamentoID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.ListaEspera{}).
		Where("id = ? AND status = 'aguardando'", entrada.ID).
		Updates(map[string]any{
			"status":         "agendado",
			"agendamento_id": agendamentoID,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrConflict("lista_espera_ja_processada")
	}

	entrada.Status = "agendado"
	entrada.AgendamentoID = &agendamentoID
	return nil
}

// Compile-time check
var _ domain.Repository = (*AgendamentoGormRepository)(nil)
