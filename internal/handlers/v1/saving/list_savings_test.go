package saving

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/savings-server/internal/apperrors"
	"github.com/carson-networks/savings-server/internal/service"
)

type mockSavingLister struct {
	mock.Mock
}

func (m *mockSavingLister) ListSavings(ctx context.Context, limit, offset int) ([]service.Saving, error) {
	args := m.Called(ctx, limit, offset)
	rows, _ := args.Get(0).([]service.Saving)
	return rows, args.Error(1)
}

func newListTestAPI(t *testing.T, svc savingLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListSavingsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListSavings_Success(t *testing.T) {
	mockSvc := new(mockSavingLister)
	mockSvc.On("ListSavings", mock.Anything, 2, 0).Return([]service.Saving{
		*serviceSaving(2, "20.00", "bonus"),
		*serviceSaving(1, "10.00", "payroll"),
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/savings?limit=2")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []SavingResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, int64(2), body[0].ID)
	assert.Equal(t, "bonus", body[0].Source)
	assert.Equal(t, int64(1), body[1].ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListSavings_Defaults(t *testing.T) {
	mockSvc := new(mockSavingLister)
	mockSvc.On("ListSavings", mock.Anything, 20, 0).Return([]service.Saving{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/savings")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []SavingResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body, "empty list encodes as [], not null")
	assert.Empty(t, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListSavings_Offset(t *testing.T) {
	mockSvc := new(mockSavingLister)
	mockSvc.On("ListSavings", mock.Anything, 5, 10).Return([]service.Saving{
		*serviceSaving(3, "1.00", "payroll"),
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/savings?limit=5&offset=10")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListSavings_OutOfRangeParams(t *testing.T) {
	mockSvc := new(mockSavingLister)

	// Schema bounds reject these before the handler runs.
	for _, query := range []string{"limit=0", "limit=101", "offset=-1", "limit=abc"} {
		resp := newListTestAPI(t, mockSvc).Get("/savings?" + query)
		assert.Equal(t, http.StatusBadRequest, resp.Code, "query=%q", query)
	}
	mockSvc.AssertNotCalled(t, "ListSavings")
}

func TestHTTP_ListSavings_ServiceError(t *testing.T) {
	mockSvc := new(mockSavingLister)
	mockSvc.On("ListSavings", mock.Anything, 20, 0).
		Return(nil, apperrors.StoreUnavailable(assert.AnError))

	resp := newListTestAPI(t, mockSvc).Get("/savings")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Database operation failed", body.Error)
	mockSvc.AssertExpectations(t)
}
