package saving

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/service"
)

// ListSavingsInput is the Huma input for listing savings. Bounds are enforced
// by the schema; out-of-range values never reach the service.
type ListSavingsInput struct {
	Limit  int `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Page size"`
	Offset int `query:"offset" default:"0" minimum:"0" doc:"Rows to skip"`
}

// ListSavingsOutput is the Huma output for listing savings.
type ListSavingsOutput struct {
	Body []SavingResponse
}

// savingLister is the interface for listing savings.
type savingLister interface {
	ListSavings(ctx context.Context, limit, offset int) ([]service.Saving, error)
}

// ListSavingsHandler handles GET /savings.
type ListSavingsHandler struct {
	SavingsService savingLister
}

// NewListSavingsHandler creates a new ListSavingsHandler.
func NewListSavingsHandler(svc savingLister) *ListSavingsHandler {
	return &ListSavingsHandler{SavingsService: svc}
}

// Register registers the list savings endpoint with the Huma API.
func (h *ListSavingsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-savings",
		Method:      http.MethodGet,
		Path:        "/savings",
		Summary:     "List savings",
		Description: "Returns savings transactions ordered newest first.",
		Tags:        []string{"Savings"},
	}, h.handle)
}

func (h *ListSavingsHandler) handle(ctx context.Context, input *ListSavingsInput) (*ListSavingsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listSavingsMs")
	}
	rows, err := h.SavingsService.ListSavings(ctx, input.Limit, input.Offset)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, logFailure(ctx, "ListSavings", err)
	}

	if logData != nil {
		logData.AddData("savingCount", len(rows))
	}

	body := make([]SavingResponse, len(rows))
	for i := range rows {
		body[i] = savingResponse(&rows[i])
	}

	return &ListSavingsOutput{Body: body}, nil
}
