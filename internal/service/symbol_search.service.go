package service

import (
	"fmt"
	"strings"

	"grpvtracker/internal/domain"
	"grpvtracker/internal/logger"
	"grpvtracker/internal/repository"

	"github.com/blevesearch/bleve/v2"
)

// SymbolSearchService answers symbol lookups from an in-memory full-text
// index over the ticker universe. The index is built once at startup and
// kept fresh as new symbols are analyzed.
type SymbolSearchService interface {
	Search(query string) ([]domain.SymbolSearchResult, error)
	Index(symbol, companyName string) error
}

type symbolSearchServiceHandler struct {
	index bleve.Index
}

type symbolDoc struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func NewSymbolSearchService(tickerRepository repository.TickerRepository) (SymbolSearchService, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create symbol index: %w", err)
	}

	tickers, err := tickerRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load ticker universe: %w", err)
	}

	batch := index.NewBatch()
	for _, t := range tickers {
		if err := batch.Index(t.Symbol, symbolDoc{Symbol: t.Symbol, Name: t.Name}); err != nil {
			return nil, fmt.Errorf("failed to index ticker %s: %w", t.Symbol, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to build symbol index: %w", err)
	}
	logger.Info("indexed %d tickers for symbol search", len(tickers))

	return &symbolSearchServiceHandler{index: index}, nil
}

func (h *symbolSearchServiceHandler) Index(symbol, companyName string) error {
	return h.index.Index(symbol, symbolDoc{Symbol: symbol, Name: companyName})
}

func (h *symbolSearchServiceHandler) Search(query string) ([]domain.SymbolSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SymbolSearchResult{}, nil
	}

	symbolPrefix := bleve.NewPrefixQuery(strings.ToLower(query))
	symbolPrefix.SetField("symbol")

	nameMatch := bleve.NewMatchQuery(query)
	nameMatch.SetField("name")

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(symbolPrefix, nameMatch))
	req.Fields = []string{"symbol", "name"}
	req.Size = 10

	res, err := h.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search symbols: %w", err)
	}

	out := []domain.SymbolSearchResult{}
	for _, hit := range res.Hits {
		result := domain.SymbolSearchResult{}
		if s, ok := hit.Fields["symbol"].(string); ok {
			result.Symbol = s
		}
		if n, ok := hit.Fields["name"].(string); ok {
			result.CompanyName = n
		}
		out = append(out, result)
	}

	return out, nil
}
