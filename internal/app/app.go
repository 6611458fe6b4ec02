package app

import (
	"net/http"

	"donation-hub-go/internal/config"
	"donation-hub-go/internal/db"
	analyticsdomain "donation-hub-go/internal/domain/analytics"
	campaignsdomain "donation-hub-go/internal/domain/campaigns"
	contentdomain "donation-hub-go/internal/domain/content"
	donationsdomain "donation-hub-go/internal/domain/donations"
	messagesdomain "donation-hub-go/internal/domain/messages"
	programsdomain "donation-hub-go/internal/domain/programs"
	storiesdomain "donation-hub-go/internal/domain/stories"
	analyticsrepo "donation-hub-go/internal/repository/postgres/analytics"
	campaignsrepo "donation-hub-go/internal/repository/postgres/campaigns"
	contentrepo "donation-hub-go/internal/repository/postgres/content"
	donationsrepo "donation-hub-go/internal/repository/postgres/donations"
	messagesrepo "donation-hub-go/internal/repository/postgres/messages"
	programsrepo "donation-hub-go/internal/repository/postgres/programs"
	storiesrepo "donation-hub-go/internal/repository/postgres/stories"
	"donation-hub-go/internal/transport/httpserver"
	"donation-hub-go/internal/transport/httpserver/handler"
	"donation-hub-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	handlers := handler.New(
		donationsdomain.NewService(donationsrepo.NewPostgres(dbConn)),
		analyticsdomain.NewService(analyticsrepo.NewPostgres(dbConn)),
		campaignsdomain.NewService(campaignsrepo.NewPostgres(dbConn)),
		programsdomain.NewService(programsrepo.NewPostgres(dbConn)),
		storiesdomain.NewService(storiesrepo.NewPostgres(dbConn)),
		messagesdomain.NewService(messagesrepo.NewPostgres(dbConn)),
		contentdomain.NewService(contentrepo.NewPostgres(dbConn)),
		log,
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
