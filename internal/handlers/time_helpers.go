package handlers

import (
	"time"

	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

// Todo parse de data/hora acontece no timezone oficial da unidade.

func nowNaUnidade(u *models.Unidade) time.Time {
	return time.Now().In(timezone.LocationDaUnidade(u))
}

func parseDataNaUnidade(u *models.Unidade, dataStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dataStr,
		timezone.LocationDaUnidade(u),
	)
}
