package repository

import (
	"fmt"

	"grpvtracker/internal/db/models/postgres/public/model"
	"grpvtracker/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type ApiRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, ar model.APIRequest) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return out, nil
}

func (h ApiRequestRepositoryHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.DurationMs, table.APIRequest.StatusCode, table.APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update API request: %w", err)
	}

	return nil
}
