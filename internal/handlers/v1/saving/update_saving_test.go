package saving

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/savings-server/internal/apperrors"
	"github.com/carson-networks/savings-server/internal/service"
)

type mockSavingUpdater struct {
	mock.Mock
}

func (m *mockSavingUpdater) UpdateSaving(ctx context.Context, id int64, patch service.SavingPatch) (*service.Saving, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Saving), args.Error(1)
}

func newUpdateTestAPI(t *testing.T, svc savingUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateSavingHandler(svc).Register(api)
	return api
}

func strPtr(s string) *string { return &s }

// -- parseUpdateSavingInput unit tests --

func TestParseUpdateSavingInput_BothFields(t *testing.T) {
	input := &UpdateSavingInput{
		ID:   "7",
		Body: UpdateSavingBody{Amount: strPtr("99.99"), Source: strPtr("bonus")},
	}

	id, patch, err := parseUpdateSavingInput(input)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.True(t, patch.Amount.IsValue())
	assert.True(t, patch.Amount.MustGet().Equal(decimal.RequireFromString("99.99")))
	assert.True(t, patch.Source.IsValue())
	assert.Equal(t, "bonus", patch.Source.MustGet())
}

func TestParseUpdateSavingInput_OmittedFieldsStayUnset(t *testing.T) {
	input := &UpdateSavingInput{ID: "7", Body: UpdateSavingBody{Source: strPtr("bonus")}}

	_, patch, err := parseUpdateSavingInput(input)
	assert.NoError(t, err)
	assert.False(t, patch.Amount.IsValue())
	assert.True(t, patch.Source.IsValue())
}

func TestParseUpdateSavingInput_InvalidID(t *testing.T) {
	input := &UpdateSavingInput{ID: "abc", Body: UpdateSavingBody{Source: strPtr("bonus")}}

	_, _, err := parseUpdateSavingInput(input)
	var appErr *apperrors.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindBadRequest, appErr.Kind())
}

func TestParseUpdateSavingInput_InvalidAmountValue(t *testing.T) {
	input := &UpdateSavingInput{ID: "7", Body: UpdateSavingBody{Amount: strPtr("0")}}

	_, _, err := parseUpdateSavingInput(input)
	var appErr *apperrors.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindValidationFailed, appErr.Kind())
	assert.Equal(t, []string{"amount: Amount must be greater than 0"}, appErr.Details())
}

// -- HTTP tests: PATCH and PUT share one handler and must behave alike --

func TestHTTP_UpdateSaving_Patch_Success(t *testing.T) {
	updated := serviceSaving(7, "99.99", "bonus")
	updated.UpdatedAt = updated.UpdatedAt.Add(time.Second)

	mockSvc := new(mockSavingUpdater)
	mockSvc.On("UpdateSaving", mock.Anything, int64(7), mock.MatchedBy(func(p service.SavingPatch) bool {
		return p.Amount.IsValue() && p.Amount.MustGet().Equal(decimal.RequireFromString("99.99")) &&
			!p.Source.IsValue()
	})).Return(updated, nil)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/savings/7", UpdateSavingBody{
		Amount: strPtr("99.99"),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SavingResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "99.99", body.Amount)
	assert.NotEqual(t, body.CreatedAt, body.UpdatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateSaving_Put_Success(t *testing.T) {
	mockSvc := new(mockSavingUpdater)
	mockSvc.On("UpdateSaving", mock.Anything, int64(7), mock.MatchedBy(func(p service.SavingPatch) bool {
		return !p.Amount.IsValue() && p.Source.IsValue() && p.Source.MustGet() == "bonus"
	})).Return(serviceSaving(7, "12.50", "bonus"), nil)

	resp := newUpdateTestAPI(t, mockSvc).Put("/savings/7", UpdateSavingBody{
		Source: strPtr("bonus"),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SavingResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bonus", body.Source)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateSaving_InvalidID(t *testing.T) {
	mockSvc := new(mockSavingUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/savings/0", UpdateSavingBody{
		Source: strPtr("bonus"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Saving ID must be a positive integer", body.Error)
	mockSvc.AssertNotCalled(t, "UpdateSaving")
}

func TestHTTP_UpdateSaving_InvalidAmount(t *testing.T) {
	mockSvc := new(mockSavingUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/savings/7", UpdateSavingBody{
		Amount: strPtr("not-a-decimal"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid amount", body.Error)
	mockSvc.AssertNotCalled(t, "UpdateSaving")
}

func TestHTTP_UpdateSaving_EmptyBody(t *testing.T) {
	mockSvc := new(mockSavingUpdater)
	mockSvc.On("UpdateSaving", mock.Anything, int64(7), mock.MatchedBy(func(p service.SavingPatch) bool {
		return !p.Amount.IsValue() && !p.Source.IsValue()
	})).Return(nil, apperrors.BadRequest("At least one field must be provided for update"))

	resp := newUpdateTestAPI(t, mockSvc).Patch("/savings/7", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "At least one field must be provided for update", body.Error)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateSaving_NotFound(t *testing.T) {
	mockSvc := new(mockSavingUpdater)
	mockSvc.On("UpdateSaving", mock.Anything, int64(99), mock.Anything).
		Return(nil, apperrors.NotFound("Saving with ID 99 not found"))

	resp := newUpdateTestAPI(t, mockSvc).Patch("/savings/99", UpdateSavingBody{
		Source: strPtr("bonus"),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Saving with ID 99 not found", body.Error)
	mockSvc.AssertExpectations(t)
}
