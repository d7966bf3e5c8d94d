package agendamento

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/notify"
)

// fakeRepo guarda tudo em memória com a mesma semântica de conflito e
// compare-and-swap do repositório real.
type fakeRepo struct {
	mu sync.Mutex

	unidade      *models.Unidade
	cfg          *models.ConfiguracaoUnidade
	profissional *models.Profissional
	servico      *models.Servico
	horario      *models.HorarioFuncionamento

	clientes     []*models.Cliente
	agendamentos map[uint]*models.Agendamento
	historicos   []*models.HistoricoAgendamento
	listaEspera  map[uint]*models.ListaEspera

	// Erros injetáveis para simular falha de leitura no armazenamento.
	horarioErr error
	clienteErr error

	proximoID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		unidade: &models.Unidade{
			ID:       1,
			Nome:     "Barbearia Central",
			Slug:     "barbearia-central",
			Timezone: "UTC",
		},
		cfg: &models.ConfiguracaoUnidade{
			ID:                             1,
			UnidadeID:                      1,
			AntecedenciaMinimaHoras:        24,
			MaxReagendamentos:              2,
			PermiteCancelamento:            true,
			HorarioLimiteCancelamentoHoras: 2,
			AgendamentoOnline:              true,
		},
		profissional: &models.Profissional{
			ID:        1,
			UnidadeID: 1,
			Nome:      "Carlos",
			Email:     "carlos@barbearia.com",
		},
		servico: &models.Servico{
			ID:         1,
			UnidadeID:  1,
			Nome:       "Corte masculino",
			DuracaoMin: 30,
			Preco:      50,
			Ativo:      true,
		},
		horario: &models.HorarioFuncionamento{
			ProfissionalID: 1,
			Inicio:         "09:00",
			Fim:            "18:00",
			PausaInicio:    "12:00",
			PausaFim:       "13:00",
			Ativo:          true,
		},
		agendamentos: map[uint]*models.Agendamento{},
		listaEspera:  map[uint]*models.ListaEspera{},
		proximoID:    1,
	}
}

func (r *fakeRepo) GetUnidadeByID(_ context.Context, id uint) (*models.Unidade, error) {
	if r.unidade == nil || r.unidade.ID != id {
		return nil, httperr.ErrNotFound("unidade_nao_encontrada")
	}
	return r.unidade, nil
}

func (r *fakeRepo) GetUnidadeBySlug(_ context.Context, slug string) (*models.Unidade, error) {
	if r.unidade == nil || r.unidade.Slug != slug {
		return nil, httperr.ErrNotFound("unidade_nao_encontrada")
	}
	return r.unidade, nil
}

func (r *fakeRepo) GetConfiguracao(_ context.Context, unidadeID uint) (*models.ConfiguracaoUnidade, error) {
	if r.cfg == nil || r.cfg.UnidadeID != unidadeID {
		return nil, httperr.ErrNotFound("unidade_nao_encontrada")
	}
	return r.cfg, nil
}

func (r *fakeRepo) GetProfissional(_ context.Context, unidadeID, profissionalID uint) (*models.Profissional, error) {
	if r.profissional == nil || r.profissional.ID != profissionalID || r.profissional.UnidadeID != unidadeID {
		return nil, httperr.ErrNotFound("profissional_nao_encontrado")
	}
	return r.profissional, nil
}

func (r *fakeRepo) GetServico(_ context.Context, unidadeID, servicoID uint) (*models.Servico, error) {
	if r.servico == nil || r.servico.ID != servicoID || r.servico.UnidadeID != unidadeID {
		return nil, httperr.ErrNotFound("servico_nao_encontrado")
	}
	return r.servico, nil
}

func (r *fakeRepo) GetOrCreateCliente(_ context.Context, unidadeID uint, nome, telefone, email string) (*models.Cliente, error) {
	if r.clienteErr != nil {
		return nil, r.clienteErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clientes {
		if c.UnidadeID == unidadeID && c.Telefone == telefone {
			return c, nil
		}
	}

	c := &models.Cliente{
		ID:        uint(len(r.clientes) + 1),
		UnidadeID: unidadeID,
		Nome:      nome,
		Telefone:  telefone,
		Email:     email,
	}
	r.clientes = append(r.clientes, c)
	return c, nil
}

func (r *fakeRepo) GetHorarioFuncionamento(_ context.Context, profissionalID uint, _ int) (*models.HorarioFuncionamento, error) {
	if r.horarioErr != nil {
		return nil, r.horarioErr
	}
	if r.horario == nil || r.horario.ProfissionalID != profissionalID {
		return nil, httperr.ErrNotFound("horario_nao_encontrado")
	}
	return r.horario, nil
}

func (r *fakeRepo) ListAgendamentosDoDia(_ context.Context, profissionalID uint, inicio, fim time.Time) ([]models.Agendamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Agendamento
	for _, ap := range r.agendamentos {
		if ap.ProfissionalID != profissionalID || ap.Status == string(domain.StatusCancelado) {
			continue
		}
		if ap.Inicio.Before(fim) && ap.Fim().After(inicio) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) temConflito(profissionalID uint, inicio, fim time.Time, ignorarID uint) bool {
	for _, ap := range r.agendamentos {
		if ap.ID == ignorarID || ap.ProfissionalID != profissionalID {
			continue
		}
		if ap.Status == string(domain.StatusCancelado) {
			continue
		}
		if inicio.Before(ap.Fim()) && fim.After(ap.Inicio) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateAgendamento(_ context.Context, ap *models.Agendamento, hist *models.HistoricoAgendamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.temConflito(ap.ProfissionalID, ap.Inicio, ap.Fim(), 0) {
		return httperr.ErrConflict("conflito_de_horario")
	}

	ap.ID = r.proximoID
	r.proximoID++

	copia := *ap
	r.agendamentos[ap.ID] = &copia

	hist.AgendamentoID = ap.ID
	r.historicos = append(r.historicos, hist)
	return nil
}

func (r *fakeRepo) GetAgendamentoByToken(_ context.Context, token string) (*models.Agendamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.agendamentos {
		if ap.TokenAcesso == token {
			copia := *ap
			return &copia, nil
		}
	}
	return nil, httperr.ErrNotFound("token_invalido")
}

func (r *fakeRepo) GetAgendamentoDaUnidade(_ context.Context, agendamentoID, unidadeID uint) (*models.Agendamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.agendamentos[agendamentoID]
	if !ok || ap.UnidadeID != unidadeID {
		return nil, httperr.ErrNotFound("agendamento_nao_encontrado")
	}
	copia := *ap
	return &copia, nil
}

func (r *fakeRepo) UpdateStatusAgendamento(
	_ context.Context,
	ap *models.Agendamento,
	statusAnterior domain.Status,
	hist *models.HistoricoAgendamento,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.agendamentos[ap.ID]
	if !ok || stored.Status != string(statusAnterior) {
		return httperr.ErrConflict("conflito_de_status")
	}

	stored.Status = ap.Status
	stored.CanceladoEm = ap.CanceladoEm
	stored.ConcluidoEm = ap.ConcluidoEm

	r.historicos = append(r.historicos, hist)
	return nil
}

func (r *fakeRepo) ReagendarAgendamento(
	_ context.Context,
	ap *models.Agendamento,
	statusAnterior domain.Status,
	novoInicio time.Time,
	hist *models.HistoricoAgendamento,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	novoFim := novoInicio.Add(time.Duration(ap.DuracaoMin) * time.Minute)
	if r.temConflito(ap.ProfissionalID, novoInicio, novoFim, ap.ID) {
		return httperr.ErrConflict("conflito_de_horario")
	}

	stored, ok := r.agendamentos[ap.ID]
	if !ok || stored.Status != string(statusAnterior) ||
		stored.ReagendamentosCount != ap.ReagendamentosCount {
		return httperr.ErrConflict("conflito_de_status")
	}

	stored.Inicio = novoInicio
	stored.Status = string(domain.StatusPendente)
	stored.ReagendamentosCount++

	ap.Inicio = novoInicio
	ap.Status = string(domain.StatusPendente)
	ap.ReagendamentosCount++

	r.historicos = append(r.historicos, hist)
	return nil
}

func (r *fakeRepo) GetListaEspera(_ context.Context, id, unidadeID uint) (*models.ListaEspera, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entrada, ok := r.listaEspera[id]
	if !ok || entrada.UnidadeID != unidadeID {
		return nil, httperr.ErrNotFound("lista_espera_nao_encontrada")
	}
	return entrada, nil
}

func (r *fakeRepo) MarcarListaEsperaAgendada(_ context.Context, entrada *models.ListaEspera, agendamentoID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.listaEspera[entrada.ID]
	if !ok || stored.Status != "aguardando" {
		return httperr.ErrConflict("lista_espera_ja_processada")
	}

	stored.Status = "agendado"
	stored.AgendamentoID = &agendamentoID

	entrada.Status = "agendado"
	entrada.AgendamentoID = &agendamentoID
	return nil
}

// seed insere um agendamento direto no armazenamento, fora do fluxo de
// criação, para montar cenários de transição.
func (r *fakeRepo) seed(inicio time.Time, status domain.Status) *models.Agendamento {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap := &models.Agendamento{
		ID:              r.proximoID,
		UnidadeID:       1,
		ProfissionalID:  1,
		ServicoID:       1,
		ClienteNome:     "João Silva",
		ClienteTelefone: "11999990000",
		Inicio:          inicio,
		DuracaoMin:      30,
		Preco:           50,
		Status:          string(status),
		TokenAcesso:     uuid.NewString(),
		Origem:          domain.OrigemPublico,
	}
	r.proximoID++
	r.agendamentos[ap.ID] = ap
	return ap
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotify acumula os eventos despachados para inspeção.
type fakeNotify struct {
	mu      sync.Mutex
	eventos []notify.Evento
}

func (n *fakeNotify) Dispatch(ev notify.Evento) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.eventos = append(n.eventos, ev)
}

func (n *fakeNotify) tipos() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, 0, len(n.eventos))
	for _, ev := range n.eventos {
		out = append(out, ev.Tipo)
	}
	return out
}
