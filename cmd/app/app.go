package app

import (
	"context"
	"fmt"
	"os"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubverd/pos-api/internal/api"
	"github.com/clubverd/pos-api/internal/config"
	"github.com/clubverd/pos-api/internal/db"
	"github.com/clubverd/pos-api/internal/logger"
	"github.com/clubverd/pos-api/internal/pkg/idgen"
	"github.com/clubverd/pos-api/internal/receipt"
	"github.com/clubverd/pos-api/internal/reports"
	"github.com/clubverd/pos-api/internal/repository"
	"github.com/clubverd/pos-api/internal/repository/dao"
	"github.com/clubverd/pos-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if err = idgen.Init(conf.API.MachineID); err != nil {
		return fmt.Errorf("failed to initialize ID generator -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if conf.Postgres.Seed {
		if err = dao.Seed(context.Background(), postgresDB); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
	}

	bus := EventBus.New()
	if err = receipt.NewPrinter(bus).Subscribe(); err != nil {
		return fmt.Errorf("failed to subscribe receipt printer -> %w", err)
	}

	ledgerSvc := service.NewLedgerService(repository.NewLedgerRepository(dao.NewLedgerDAO(postgresDB)))
	closer := reports.NewDailyCloser(ledgerSvc)
	if err = closer.Start(); err != nil {
		return fmt.Errorf("failed to start daily close job -> %w", err)
	}
	defer closer.Stop()

	s := api.NewServer(conf, postgresDB, bus)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
