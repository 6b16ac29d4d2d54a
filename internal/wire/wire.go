// Package wire provides dependency injection for the dealboard application.
// It creates singleton services with lazy initialization.
package wire

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/example/dealboard/internal/adapters/sqlite"
	"github.com/example/dealboard/internal/app"
	"github.com/example/dealboard/internal/config"
	"github.com/example/dealboard/internal/db"
	"github.com/example/dealboard/internal/events"
	"github.com/example/dealboard/internal/ports/primary"
)

var (
	cfg             *config.Config
	hub             *events.Hub
	dealStore       *app.DealStore
	dealService     primary.DealService
	pipelineService primary.PipelineService
	boardService    primary.BoardService
	contactService  primary.ContactService
	companyService  primary.CompanyService
	scoringService  primary.ScoringService
	once            sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Hub returns the singleton event hub.
func Hub() *events.Hub {
	once.Do(initServices)
	return hub
}

// DealService returns the singleton DealService instance.
func DealService() primary.DealService {
	once.Do(initServices)
	return dealService
}

// PipelineService returns the singleton PipelineService instance.
func PipelineService() primary.PipelineService {
	once.Do(initServices)
	return pipelineService
}

// BoardService returns the singleton BoardService instance.
func BoardService() primary.BoardService {
	once.Do(initServices)
	return boardService
}

// ContactService returns the singleton ContactService instance.
func ContactService() primary.ContactService {
	once.Do(initServices)
	return contactService
}

// CompanyService returns the singleton CompanyService instance.
func CompanyService() primary.CompanyService {
	once.Do(initServices)
	return companyService
}

// ScoringService returns the singleton ScoringService instance.
func ScoringService() primary.ScoringService {
	once.Do(initServices)
	return scoringService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	configDir, err := config.Dir()
	if err != nil {
		log.Fatalf("failed to resolve config directory: %v", err)
	}
	cfg, err = config.Load(configDir)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	database, err := db.GetDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports)
	dealRepo := sqlite.NewDealRepository(database)
	pipelineRepo := sqlite.NewPipelineRepository(database)
	contactRepo := sqlite.NewContactRepository(database)
	companyRepo := sqlite.NewCompanyRepository(database)

	hub = events.NewHub()
	dealStore = app.NewDealStore()

	// Services (primary ports implementation)
	pipelineService = app.NewPipelineService(pipelineRepo)
	dealService = app.NewDealService(dealRepo, pipelineRepo, contactRepo, companyRepo, hub, dealStore, cfg.DefaultCurrency)
	boardService = app.NewBoardService(dealService, pipelineService, pipelineRepo)
	contactService = app.NewContactService(contactRepo)
	companyService = app.NewCompanyService(companyRepo)
	scoringService = app.NewScoringService(contactRepo, companyRepo)
}
