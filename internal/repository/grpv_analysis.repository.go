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
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GrpvAnalysisRepository interface {
	Get(analysisID uuid.UUID) (*model.GrpvAnalysis, error)
	GetByUserAndSymbol(userID uuid.UUID, symbol string) (*model.GrpvAnalysis, error)
	List(userID uuid.UUID) ([]model.GrpvAnalysis, error)
	Create(m model.GrpvAnalysis) (*model.GrpvAnalysis, error)
	Update(m model.GrpvAnalysis, expectedVersion int32) (*model.GrpvAnalysis, error)
	Delete(analysisID uuid.UUID) error
}

type grpvAnalysisRepositoryHandler struct {
	Db *sql.DB
}

func NewGrpvAnalysisRepository(db *sql.DB) GrpvAnalysisRepository {
	return grpvAnalysisRepositoryHandler{Db: db}
}

func (h grpvAnalysisRepositoryHandler) Get(analysisID uuid.UUID) (*model.GrpvAnalysis, error) {
	query := table.GrpvAnalysis.
		SELECT(table.GrpvAnalysis.AllColumns).
		WHERE(table.GrpvAnalysis.AnalysisID.EQ(postgres.UUID(analysisID)))

	out := model.GrpvAnalysis{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.WrapError(domain.ErrorKind_NotFound, err, "analysis %s not found", analysisID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", analysisID, err)
	}

	return &out, nil
}

func (h grpvAnalysisRepositoryHandler) GetByUserAndSymbol(userID uuid.UUID, symbol string) (*model.GrpvAnalysis, error) {
	query := table.GrpvAnalysis.
		SELECT(table.GrpvAnalysis.AllColumns).
		WHERE(postgres.AND(
			table.GrpvAnalysis.UserID.EQ(postgres.UUID(userID)),
			table.GrpvAnalysis.Symbol.EQ(postgres.String(symbol)),
		))

	out := model.GrpvAnalysis{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.WrapError(domain.ErrorKind_NotFound, err, "no analysis for symbol %s", symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis for %s: %w", symbol, err)
	}

	return &out, nil
}

func (h grpvAnalysisRepositoryHandler) List(userID uuid.UUID) ([]model.GrpvAnalysis, error) {
	query := table.GrpvAnalysis.
		SELECT(table.GrpvAnalysis.AllColumns).
		WHERE(table.GrpvAnalysis.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.GrpvAnalysis.Symbol.ASC())

	out := []model.GrpvAnalysis{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	return out, nil
}

func (h grpvAnalysisRepositoryHandler) Create(m model.GrpvAnalysis) (*model.GrpvAnalysis, error) {
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	m.Version = 1

	query := table.GrpvAnalysis.
		INSERT(table.GrpvAnalysis.MutableColumns).
		MODEL(m).
		RETURNING(table.GrpvAnalysis.AllColumns)

	out := model.GrpvAnalysis{}
	err := query.Query(h.Db, &out)
	if err != nil {
		// unique (user_id, symbol) - a concurrent create beat us to it
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, domain.WrapError(domain.ErrorKind_ConcurrencyConflict, err, "analysis for %s already exists", m.Symbol)
		}
		return nil, fmt.Errorf("failed to insert analysis: %w", err)
	}

	return &out, nil
}

// Update performs the optimistic check-and-increment: the write only lands
// when the stored version still equals expectedVersion. A missed match is a
// concurrency conflict for the caller to retry or surface.
func (h grpvAnalysisRepositoryHandler) Update(m model.GrpvAnalysis, expectedVersion int32) (*model.GrpvAnalysis, error) {
	m.UpdatedAt = time.Now().UTC()
	m.Version = expectedVersion + 1

	query := table.GrpvAnalysis.
		UPDATE(table.GrpvAnalysis.MutableColumns).
		MODEL(m).
		WHERE(postgres.AND(
			table.GrpvAnalysis.AnalysisID.EQ(postgres.UUID(m.AnalysisID)),
			table.GrpvAnalysis.Version.EQ(postgres.Int32(expectedVersion)),
		)).
		RETURNING(table.GrpvAnalysis.AllColumns)

	out := model.GrpvAnalysis{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.WrapError(domain.ErrorKind_ConcurrencyConflict, err, "analysis %s version %d was overwritten", m.AnalysisID, expectedVersion)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update analysis %s: %w", m.AnalysisID, err)
	}

	return &out, nil
}

func (h grpvAnalysisRepositoryHandler) Delete(analysisID uuid.UUID) error {
	query := table.GrpvAnalysis.
		DELETE().
		WHERE(table.GrpvAnalysis.AnalysisID.EQ(postgres.UUID(analysisID)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete analysis %s: %w", analysisID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return domain.NewError(domain.ErrorKind_NotFound, "analysis %s not found", analysisID)
	}

	return nil
}
