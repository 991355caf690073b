package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"grpvtracker/internal/domain"
	"grpvtracker/internal/logger"
	"grpvtracker/pkg/fundamentals"

	"github.com/montanaflynn/stats"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// FactorDataRepository is the external factor-data collaborator: it supplies
// the raw metrics a calculation scores, plus the market quote. Metrics the
// provider cannot produce are simply omitted from the result - downstream
// scoring drops them rather than defaulting them.
type FactorDataRepository interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	GetFactorInputs(ctx context.Context, symbol string) ([]domain.FactorInput, error)
}

type factorDataRepositoryHandler struct {
	FundamentalsClient fundamentals.Client
}

func NewFactorDataRepository(fundamentalsClient fundamentals.Client) FactorDataRepository {
	return factorDataRepositoryHandler{
		FundamentalsClient: fundamentalsClient,
	}
}

func (h factorDataRepositoryHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	q, err := equity.Get(symbol)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorKind_Provider, err, "failed to get quote for %s", symbol)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, domain.NewError(domain.ErrorKind_NotFound, "no quote for symbol %s", symbol)
	}

	name := q.ShortName
	if name == "" {
		name = symbol
	}

	return &domain.Quote{
		Symbol:       symbol,
		CompanyName:  name,
		CurrentPrice: decimal.NewFromFloat(q.RegularMarketPrice),
	}, nil
}

func (h factorDataRepositoryHandler) GetFactorInputs(ctx context.Context, symbol string) ([]domain.FactorInput, error) {
	q, err := equity.Get(symbol)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorKind_Provider, err, "failed to get equity data for %s", symbol)
	}
	if q == nil {
		return nil, domain.NewError(domain.ErrorKind_NotFound, "symbol %s not found", symbol)
	}

	inputs := []domain.FactorInput{}
	add := func(factorID string, value float64) {
		v := value
		inputs = append(inputs, domain.FactorInput{FactorID: factorID, RawValue: &v})
	}

	if q.TrailingPE > 0 {
		add("pe_ratio", q.TrailingPE)
	}
	if q.PriceToBook > 0 {
		add("price_to_book", q.PriceToBook)
	}
	if q.TrailingAnnualDividendYield > 0 {
		add("dividend_yield", q.TrailingAnnualDividendYield)
	}

	// partial results are fine past this point: a degraded provider yields
	// fewer factors, never fabricated ones
	if vol, err := h.annualizedVolatility(symbol); err != nil {
		logger.FromContext(ctx).Warnf("no volatility for %s: %v", symbol, err)
	} else {
		add("volatility", vol)
	}

	metrics, err := h.FundamentalsClient.GetMetrics(ctx, symbol)
	if errors.Is(err, fundamentals.ErrSymbolNotFound) {
		logger.FromContext(ctx).Warnf("no fundamentals coverage for %s", symbol)
	} else if err != nil {
		return nil, domain.WrapError(domain.ErrorKind_Provider, err, "failed to get fundamentals for %s", symbol)
	} else {
		addIfPresent := func(factorID string, value *float64) {
			if value != nil {
				inputs = append(inputs, domain.FactorInput{FactorID: factorID, RawValue: value})
			}
		}
		addIfPresent("revenue_growth", metrics.RevenueGrowthYoY)
		addIfPresent("eps_growth", metrics.EpsGrowthYoY)
		addIfPresent("fcf_growth", metrics.FcfGrowthYoY)
		addIfPresent("roe", metrics.Roe)
		addIfPresent("net_margin", metrics.NetMargin)
		addIfPresent("operating_margin", metrics.OperatingMargin)
		addIfPresent("debt_to_equity", metrics.DebtToEquity)
		addIfPresent("current_ratio", metrics.CurrentRatio)
		addIfPresent("price_to_sales", metrics.PriceToSales)
	}

	return inputs, nil
}

// annualizedVolatility computes the sample stdev of daily returns over the
// trailing year, scaled by sqrt(252).
func (h factorDataRepositoryHandler) annualizedVolatility(symbol string) (float64, error) {
	end := time.Now()
	start := end.AddDate(-1, 0, 0)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	closes := []float64{}
	for iter.Next() {
		closes = append(closes, iter.Bar().AdjClose.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(closes) < 20 {
		return 0, errors.New("not enough price history")
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, err
	}

	return stdev * math.Sqrt(252), nil
}
