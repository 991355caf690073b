package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"grpvtracker/internal/db/models/postgres/public/model"
	"grpvtracker/internal/db/models/postgres/public/table"
	"grpvtracker/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type TickerRepository interface {
	List() ([]model.Ticker, error)
	GetBySymbol(symbol string) (*model.Ticker, error)
	GetOrCreate(t model.Ticker) (*model.Ticker, error)
}

type tickerRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerRepository(db *sql.DB) TickerRepository {
	return tickerRepositoryHandler{Db: db}
}

func (h tickerRepositoryHandler) List() ([]model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		ORDER_BY(table.Ticker.Symbol.ASC())

	result := []model.Ticker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	return result, nil
}

func (h tickerRepositoryHandler) GetBySymbol(symbol string) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.Symbol.EQ(postgres.String(symbol)))

	out := model.Ticker{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.WrapError(domain.ErrorKind_NotFound, err, "ticker %s not found", symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker %s: %w", symbol, err)
	}

	return &out, nil
}

func (h tickerRepositoryHandler) GetOrCreate(t model.Ticker) (*model.Ticker, error) {
	t.CreatedAt = time.Now().UTC()

	query := table.Ticker.
		INSERT(table.Ticker.MutableColumns).
		MODEL(t).
		ON_CONFLICT(table.Ticker.Symbol).DO_UPDATE(
		postgres.SET(
			table.Ticker.Name.SET(table.Ticker.EXCLUDED.Name),
		),
	).RETURNING(table.Ticker.AllColumns)

	out := model.Ticker{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticker: %w", err)
	}

	return &out, nil
}
