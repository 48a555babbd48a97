package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carson-networks/savings-server/internal/apperrors"
	"github.com/carson-networks/savings-server/internal/operator/actions"
	"github.com/carson-networks/savings-server/internal/storage/saving"
)

const defaultLimit = 20

// savingsReader is the read and failure-classification surface of the store.
type savingsReader interface {
	FindByID(ctx context.Context, id int64) (*saving.Saving, error)
	List(ctx context.Context, filter *saving.Filter) ([]*saving.Saving, error)
	Classify(err error) saving.FailureClass
}

// actionProcessor runs write actions; in production it is the operator pool.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SavingsService handles savings business logic. Every failure leaving this
// type is an *apperrors.Error.
type SavingsService struct {
	reader   savingsReader
	operator actionProcessor
}

// NewSavingsService creates a new SavingsService.
func NewSavingsService(reader savingsReader, op actionProcessor) *SavingsService {
	return &SavingsService{reader: reader, operator: op}
}

// CreateSaving persists a new saving and returns the stored row.
func (s *SavingsService) CreateSaving(ctx context.Context, create CreateSaving) (*Saving, error) {
	action := &actions.CreateSaving{
		Create: &saving.Create{
			Amount: create.Amount,
			Source: create.Source,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, s.storeFailure(err)
	}
	return savingFromStorage(action.Result), nil
}

// GetSaving retrieves a saving by id.
func (s *SavingsService) GetSaving(ctx context.Context, id int64) (*Saving, error) {
	row, err := s.reader.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeFailure(err)
	}
	if row == nil {
		return nil, notFound(id)
	}
	return savingFromStorage(row), nil
}

// ListSavings returns savings newest first, bounded by limit/offset.
func (s *SavingsService) ListSavings(ctx context.Context, limit, offset int) ([]Saving, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.reader.List(ctx, &saving.Filter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, s.storeFailure(err)
	}

	converted := make([]Saving, len(rows))
	for i, row := range rows {
		converted[i] = *savingFromStorage(row)
	}
	return converted, nil
}

// UpdateSaving applies a partial update. An empty patch is rejected before
// any store access.
func (s *SavingsService) UpdateSaving(ctx context.Context, id int64, patch SavingPatch) (*Saving, error) {
	storagePatch := &saving.Patch{
		Amount: patch.Amount,
		Source: patch.Source,
	}
	if storagePatch.IsEmpty() {
		return nil, apperrors.BadRequest("At least one field must be provided for update")
	}

	action := &actions.UpdateSaving{ID: id, Patch: storagePatch}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, s.storeFailure(err)
	}
	if action.Result == nil {
		// The UPDATE matched no row; sql.ErrNoRows as cause keeps the log
		// distinguishable from a pre-check miss.
		return nil, notFound(id).WithCause(sql.ErrNoRows)
	}
	return savingFromStorage(action.Result), nil
}

// DeleteSaving removes a saving. Deleting an absent id reports NotFound,
// never a silent success.
func (s *SavingsService) DeleteSaving(ctx context.Context, id int64) error {
	action := &actions.DeleteSaving{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return s.storeFailure(err)
	}
	if action.Affected == 0 {
		return notFound(id)
	}
	return nil
}

func notFound(id int64) *apperrors.Error {
	return apperrors.NotFound(fmt.Sprintf("Saving with ID %d not found", id))
}

// storeFailure folds a backend failure into the taxonomy using the store's
// classification capability. Already-classified errors pass through.
func (s *SavingsService) storeFailure(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch s.reader.Classify(err) {
	case saving.FailureConflict:
		return apperrors.Conflict(err)
	case saving.FailureForeignKey:
		return apperrors.ForeignKeyViolation(err)
	case saving.FailureNotNull:
		return apperrors.MissingRequiredField(err)
	}
	return apperrors.StoreUnavailable(err)
}

func savingFromStorage(row *saving.Saving) *Saving {
	return &Saving{
		ID:        row.ID,
		Amount:    row.Amount,
		Source:    row.Source,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
