package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"grpvtracker/api"
	"grpvtracker/internal/catalog"
	"grpvtracker/internal/repository"
	"grpvtracker/internal/service"
	"grpvtracker/internal/util"
	"grpvtracker/pkg/fundamentals"

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

	factorCatalog, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load factor catalog: %w", err)
	}

	analysisRepository := repository.NewGrpvAnalysisRepository(dbConn)
	tickerRepository := repository.NewTickerRepository(dbConn)
	factorDataRepository := repository.NewFactorDataRepository(fundamentals.Client{
		HttpClient: http.DefaultClient,
		ApiKey:     secrets.Fundamentals.ApiKey,
		BaseUrl:    secrets.Fundamentals.BaseUrl,
	})

	symbolSearchService, err := service.NewSymbolSearchService(tickerRepository)
	if err != nil {
		return nil, fmt.Errorf("failed to build symbol search index: %w", err)
	}

	analysisService := service.NewAnalysisService(
		analysisRepository,
		factorDataRepository,
		tickerRepository,
		symbolSearchService,
		factorCatalog,
		secrets.Scoring,
		secrets.Provider,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		AnalysisService:      analysisService,
		SymbolSearchService:  symbolSearchService,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		JwtDecodeToken:       secrets.Jwt,
	}

	return apiHandler, nil
}
