package db

import (
	"log"
	"time"

	"github.com/agendalivre/agenda-api/internal/config"
	"github.com/agendalivre/agenda-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Unidade{},
		&models.ConfiguracaoUnidade{},
		&models.Profissional{},
		&models.Servico{},
		&models.HorarioFuncionamento{},
		&models.Cliente{},
		&models.Agendamento{},
		&models.HistoricoAgendamento{},
		&models.NotificacaoLog{},
		&models.ListaEspera{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE unidades
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
