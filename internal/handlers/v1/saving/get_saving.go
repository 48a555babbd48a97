package saving

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/service"
)

// GetSavingInput is the Huma input for fetching a saving by id.
type GetSavingInput struct {
	ID string `path:"id" doc:"Saving ID, a positive integer"`
}

// GetSavingOutput is the Huma output for fetching a saving.
type GetSavingOutput struct {
	Body SavingResponse
}

// savingGetter is the interface for fetching a single saving.
type savingGetter interface {
	GetSaving(ctx context.Context, id int64) (*service.Saving, error)
}

// GetSavingHandler handles GET /savings/{id}.
type GetSavingHandler struct {
	SavingsService savingGetter
}

// NewGetSavingHandler creates a new GetSavingHandler.
func NewGetSavingHandler(svc savingGetter) *GetSavingHandler {
	return &GetSavingHandler{SavingsService: svc}
}

// Register registers the get saving endpoint with the Huma API.
func (h *GetSavingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-saving",
		Method:      http.MethodGet,
		Path:        "/savings/{id}",
		Summary:     "Get saving",
		Description: "Returns a single savings transaction by id.",
		Tags:        []string{"Savings"},
	}, h.handle)
}

func (h *GetSavingHandler) handle(ctx context.Context, input *GetSavingInput) (*GetSavingOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := parseSavingID(input.ID)
	if err != nil {
		return nil, logFailure(ctx, "GetSaving", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getSavingMs")
	}
	row, err := h.SavingsService.GetSaving(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, logFailure(ctx, "GetSaving", err)
	}

	return &GetSavingOutput{Body: savingResponse(row)}, nil
}
