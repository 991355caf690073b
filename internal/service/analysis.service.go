package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"grpvtracker/internal/calculator"
	"grpvtracker/internal/catalog"
	"grpvtracker/internal/db/models/postgres/public/model"
	"grpvtracker/internal/domain"
	"grpvtracker/internal/logger"
	"grpvtracker/internal/repository"
	"grpvtracker/internal/util"

	"github.com/google/uuid"
)

type AnalysisService interface {
	Calculate(ctx context.Context, userID uuid.UUID, symbol string) (*domain.GRPVAnalysis, error)
	GetByID(ctx context.Context, userID, analysisID uuid.UUID) (*domain.GRPVAnalysis, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.GRPVAnalysis, error)
	Delete(ctx context.Context, userID, analysisID uuid.UUID) error
}

// SymbolIndexer is the slice of the search service the orchestrator needs to
// keep the symbol index fresh after a successful calculation.
type SymbolIndexer interface {
	Index(symbol, companyName string) error
}

type analysisServiceHandler struct {
	AnalysisRepository   repository.GrpvAnalysisRepository
	FactorDataRepository repository.FactorDataRepository
	TickerRepository     repository.TickerRepository
	SymbolIndexer        SymbolIndexer
	Catalog              *catalog.Catalog
	Scoring              util.ScoringConfig
	Provider             util.ProviderConfig

	keyLocksMu sync.Mutex
	keyLocks   map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewAnalysisService(
	analysisRepository repository.GrpvAnalysisRepository,
	factorDataRepository repository.FactorDataRepository,
	tickerRepository repository.TickerRepository,
	symbolIndexer SymbolIndexer,
	cat *catalog.Catalog,
	scoring util.ScoringConfig,
	provider util.ProviderConfig,
) AnalysisService {
	return &analysisServiceHandler{
		AnalysisRepository:   analysisRepository,
		FactorDataRepository: factorDataRepository,
		TickerRepository:     tickerRepository,
		SymbolIndexer:        symbolIndexer,
		Catalog:              cat,
		Scoring:              scoring,
		Provider:             provider,
		keyLocks:             map[string]*keyLock{},
	}
}

// Calculate fetches a fresh factor snapshot, scores it, and stores the
// single current analysis for (user, symbol). A failed calculation never
// touches the stored record; a provider failure after retries falls back to
// the prior analysis when one exists, flagged stale.
func (h *analysisServiceHandler) Calculate(ctx context.Context, userID uuid.UUID, symbol string) (*domain.GRPVAnalysis, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.NewError(domain.ErrorKind_Validation, "symbol is required")
	}

	quote, inputs, err := h.fetchFactorData(ctx, symbol)
	if err != nil {
		if domain.IsKind(err, domain.ErrorKind_Provider) {
			if prior, getErr := h.AnalysisRepository.GetByUserAndSymbol(userID, symbol); getErr == nil {
				logger.FromContext(ctx).Warnf("returning stale analysis for %s after provider failure: %v", symbol, err)
				stale, mapErr := modelToDomain(*prior)
				if mapErr != nil {
					return nil, mapErr
				}
				stale.Stale = true
				return stale, nil
			}
		}
		return nil, err
	}

	scores, err := calculator.ScoreFactors(h.Catalog, inputs, h.Scoring.CategoryWeights)
	if err != nil {
		// insufficient data aborts here, before any write
		return nil, err
	}

	rec := calculator.Recommend(scores.OverallScore, scores.CategoryScores, quote.CurrentPrice, calculator.RecommendationConfig{
		BuyThreshold:    h.Scoring.BuyThreshold,
		SellThreshold:   h.Scoring.SellThreshold,
		UpsideFactorMin: h.Scoring.UpsideFactorMin,
		UpsideFactorMax: h.Scoring.UpsideFactorMax,
		DownsideFloor:   h.Scoring.DownsideFloor,
		DownsideCeiling: h.Scoring.DownsideCeiling,
	})

	m, err := buildModel(userID, symbol, quote, inputs, scores, rec)
	if err != nil {
		return nil, err
	}

	unlock := h.lockKey(userID, symbol)
	saved, err := h.upsert(m)
	unlock()
	if err != nil {
		return nil, err
	}

	// keep the ticker universe and search index in sync; failures here do
	// not invalidate the stored analysis
	if _, err := h.TickerRepository.GetOrCreate(model.Ticker{Symbol: symbol, Name: quote.CompanyName}); err != nil {
		logger.FromContext(ctx).Warnf("failed to upsert ticker %s: %v", symbol, err)
	} else if h.SymbolIndexer != nil {
		if err := h.SymbolIndexer.Index(symbol, quote.CompanyName); err != nil {
			logger.FromContext(ctx).Warnf("failed to index ticker %s: %v", symbol, err)
		}
	}

	return modelToDomain(*saved)
}

func (h *analysisServiceHandler) GetByID(ctx context.Context, userID, analysisID uuid.UUID) (*domain.GRPVAnalysis, error) {
	m, err := h.AnalysisRepository.Get(analysisID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, domain.NewError(domain.ErrorKind_Authorization, "analysis %s does not belong to caller", analysisID)
	}
	return modelToDomain(*m)
}

func (h *analysisServiceHandler) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.GRPVAnalysis, error) {
	ms, err := h.AnalysisRepository.List(userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.GRPVAnalysis, 0, len(ms))
	for _, m := range ms {
		a, err := modelToDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

func (h *analysisServiceHandler) Delete(ctx context.Context, userID, analysisID uuid.UUID) error {
	m, err := h.AnalysisRepository.Get(analysisID)
	if err != nil {
		return err
	}
	if m.UserID != userID {
		return domain.NewError(domain.ErrorKind_Authorization, "analysis %s does not belong to caller", analysisID)
	}
	return h.AnalysisRepository.Delete(analysisID)
}

// lockKey serializes recomputation per (user, symbol). The lock is held only
// around the read-modify-write of the stored record, never across the
// provider fetch. Entries are refcounted and dropped when the last holder
// releases, so the map stays bounded by in-flight calculations.
func (h *analysisServiceHandler) lockKey(userID uuid.UUID, symbol string) func() {
	key := userID.String() + "|" + symbol
	h.keyLocksMu.Lock()
	lock, ok := h.keyLocks[key]
	if !ok {
		lock = &keyLock{}
		h.keyLocks[key] = lock
	}
	lock.refs++
	h.keyLocksMu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()
		h.keyLocksMu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(h.keyLocks, key)
		}
		h.keyLocksMu.Unlock()
	}
}

// upsert writes the computed analysis under optimistic concurrency, with one
// bounded retry when the version check misses.
func (h *analysisServiceHandler) upsert(m model.GrpvAnalysis) (*model.GrpvAnalysis, error) {
	existing, err := h.AnalysisRepository.GetByUserAndSymbol(m.UserID, m.Symbol)
	if domain.IsKind(err, domain.ErrorKind_NotFound) {
		created, createErr := h.AnalysisRepository.Create(m)
		if createErr == nil {
			return created, nil
		}
		if !domain.IsKind(createErr, domain.ErrorKind_ConcurrencyConflict) {
			return nil, createErr
		}
		// lost a create race; the row exists now, take the update path
		existing, err = h.AnalysisRepository.GetByUserAndSymbol(m.UserID, m.Symbol)
	}
	if err != nil {
		return nil, err
	}

	m.AnalysisID = existing.AnalysisID
	m.CreatedAt = existing.CreatedAt
	updated, err := h.AnalysisRepository.Update(m, existing.Version)
	if domain.IsKind(err, domain.ErrorKind_ConcurrencyConflict) {
		existing, getErr := h.AnalysisRepository.GetByUserAndSymbol(m.UserID, m.Symbol)
		if getErr != nil {
			return nil, err
		}
		m.AnalysisID = existing.AnalysisID
		m.CreatedAt = existing.CreatedAt
		return h.AnalysisRepository.Update(m, existing.Version)
	}
	return updated, err
}

// fetchFactorData pulls the quote and raw factors, bounded by the configured
// per-attempt timeout and retried with backoff on transient failure. Only
// provider failures are retried; unknown symbols fail immediately.
func (h *analysisServiceHandler) fetchFactorData(ctx context.Context, symbol string) (*domain.Quote, []domain.FactorInput, error) {
	timeout := time.Duration(h.Provider.TimeoutMs) * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= h.Provider.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 250 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, nil, domain.WrapError(domain.ErrorKind_Provider, ctx.Err(), "factor fetch cancelled for %s", symbol)
			case <-time.After(backoff):
			}
		}

		quote, inputs, err := h.fetchOnce(ctx, symbol, timeout)
		if err == nil {
			return quote, inputs, nil
		}
		if !domain.IsKind(err, domain.ErrorKind_Provider) {
			return nil, nil, err
		}
		lastErr = err
		logger.FromContext(ctx).Warnf("factor fetch attempt %d for %s failed: %v", attempt+1, symbol, err)
	}

	return nil, nil, lastErr
}

func (h *analysisServiceHandler) fetchOnce(ctx context.Context, symbol string, timeout time.Duration) (*domain.Quote, []domain.FactorInput, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type fetchResult struct {
		quote  *domain.Quote
		inputs []domain.FactorInput
		err    error
	}
	ch := make(chan fetchResult, 1)
	go func() {
		quote, err := h.FactorDataRepository.GetQuote(attemptCtx, symbol)
		if err != nil {
			ch <- fetchResult{err: err}
			return
		}
		inputs, err := h.FactorDataRepository.GetFactorInputs(attemptCtx, symbol)
		ch <- fetchResult{quote: quote, inputs: inputs, err: err}
	}()

	select {
	case <-attemptCtx.Done():
		return nil, nil, domain.WrapError(domain.ErrorKind_Provider, attemptCtx.Err(), "factor fetch timed out for %s", symbol)
	case r := <-ch:
		return r.quote, r.inputs, r.err
	}
}

func buildModel(
	userID uuid.UUID,
	symbol string,
	quote *domain.Quote,
	inputs []domain.FactorInput,
	scores *calculator.ScoreSet,
	rec calculator.RecommendationResult,
) (model.GrpvAnalysis, error) {
	snapshotJson, err := json.Marshal(inputs)
	if err != nil {
		return model.GrpvAnalysis{}, fmt.Errorf("failed to serialize factor snapshot: %w", err)
	}
	scoresJson, err := json.Marshal(scores.CategoryScores)
	if err != nil {
		return model.GrpvAnalysis{}, fmt.Errorf("failed to serialize category scores: %w", err)
	}

	return model.GrpvAnalysis{
		UserID:               userID,
		Symbol:               symbol,
		CompanyName:          util.StrPointer(quote.CompanyName),
		FactorSnapshot:       string(snapshotJson),
		CategoryScores:       string(scoresJson),
		OverallScore:         util.FloatPointer(scores.OverallScore),
		Recommendation:       util.StrPointer(string(rec.Recommendation)),
		RecommendationReason: util.StrPointer(rec.Reason),
		CurrentPrice:         quote.CurrentPrice,
		TargetPrice:          rec.TargetPrice,
		StopLossPrice:        rec.StopLossPrice,
		AnalysisDate:         time.Now().UTC(),
	}, nil
}

func modelToDomain(m model.GrpvAnalysis) (*domain.GRPVAnalysis, error) {
	snapshot := []domain.FactorInput{}
	if err := json.Unmarshal([]byte(m.FactorSnapshot), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse stored factor snapshot for %s: %w", m.AnalysisID, err)
	}
	categoryScores := map[domain.Category]domain.CategoryScore{}
	if err := json.Unmarshal([]byte(m.CategoryScores), &categoryScores); err != nil {
		return nil, fmt.Errorf("failed to parse stored category scores for %s: %w", m.AnalysisID, err)
	}

	out := &domain.GRPVAnalysis{
		ID:             m.AnalysisID,
		UserID:         m.UserID,
		Symbol:         m.Symbol,
		FactorSnapshot: snapshot,
		CategoryScores: categoryScores,
		OverallScore:   m.OverallScore,
		CurrentPrice:   m.CurrentPrice,
		TargetPrice:    m.TargetPrice,
		StopLossPrice:  m.StopLossPrice,
		AnalysisDate:   m.AnalysisDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Version:        m.Version,
	}
	if m.CompanyName != nil {
		out.CompanyName = *m.CompanyName
	}
	if m.Recommendation != nil {
		r := domain.Recommendation(*m.Recommendation)
		out.Recommendation = &r
	}
	if m.RecommendationReason != nil {
		out.RecommendationReason = *m.RecommendationReason
	}

	return out, nil
}
