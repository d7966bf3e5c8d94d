package agendamento

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/models"
)

// TokenResolution é o retrato do agendamento no momento da consulta.
// As permissões valem para o "now" usado no cálculo e nada mais: a
// mutação revalida tudo de novo.
type TokenResolution struct {
	Agendamento  *models.Agendamento
	Configuracao *models.ConfiguracaoUnidade
	Permissoes   domain.Permissoes
}

type ResolveToken struct {
	repo domain.Repository
}

func NewResolveToken(repo domain.Repository) *ResolveToken {
	return &ResolveToken{repo: repo}
}

func (uc *ResolveToken) Execute(
	ctx context.Context,
	token string,
	now time.Time,
) (*TokenResolution, error) {

	ap, err := uc.repo.GetAgendamentoByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.repo.GetConfiguracao(ctx, ap.UnidadeID)
	if err != nil {
		return nil, err
	}

	return &TokenResolution{
		Agendamento:  ap,
		Configuracao: cfg,
		Permissoes:   domain.ComputePermissoes(ap, cfg, now),
	}, nil
}
