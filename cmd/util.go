package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"stocktracker/api"
	"stocktracker/internal/data"
	"stocktracker/internal/repository"
	"stocktracker/internal/service"
	"stocktracker/internal/util"
	"stocktracker/pkg/stooq"
	"stocktracker/pkg/yahoofinance"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	reference, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	transactionRepository := repository.NewTransactionRepository(dbConn)
	stockPriceRepository := repository.NewStockPriceRepository(dbConn)

	priceService := service.NewPriceService(stockPriceRepository, []service.QuoteProvider{
		yahoofinance.Client{},
		stooq.NewClient(),
	})
	positionService := service.NewPositionService(transactionRepository)
	transactionService := service.NewTransactionService(transactionRepository, secrets.RejectOversells)
	dashboardService := service.NewDashboardService(transactionRepository, priceService)
	performanceService := service.NewPerformanceService(positionService, priceService)
	allocationService := service.NewAllocationService(positionService, priceService, reference)
	calendarService := service.NewCalendarService(positionService, reference)
	simulationService := service.NewSimulationService(priceService)

	apiHandler := &api.ApiHandler{
		Db:                 dbConn,
		TransactionService: transactionService,
		DashboardService:   dashboardService,
		PerformanceService: performanceService,
		AllocationService:  allocationService,
		CalendarService:    calendarService,
		SimulationService:  simulationService,
		PriceService:       priceService,
		PositionService:    positionService,
	}

	return apiHandler, nil
}
