package saving

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/savings-server/internal/logging"
)

// DeleteSavingInput is the Huma input for deleting a saving.
type DeleteSavingInput struct {
	ID string `path:"id" doc:"Saving ID, a positive integer"`
}

// DeleteSavingOutput is the Huma output for deleting a saving; 204, no body.
type DeleteSavingOutput struct {
	Status int
}

// savingDeleter is the interface for deleting savings.
type savingDeleter interface {
	DeleteSaving(ctx context.Context, id int64) error
}

// DeleteSavingHandler handles DELETE /savings/{id}.
type DeleteSavingHandler struct {
	SavingsService savingDeleter
}

// NewDeleteSavingHandler creates a new DeleteSavingHandler.
func NewDeleteSavingHandler(svc savingDeleter) *DeleteSavingHandler {
	return &DeleteSavingHandler{SavingsService: svc}
}

// Register registers the delete saving endpoint with the Huma API.
func (h *DeleteSavingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-saving",
		Method:      http.MethodDelete,
		Path:        "/savings/{id}",
		Summary:     "Delete saving",
		Description: "Removes a savings transaction. Deleting an absent id is not a silent success.",
		Tags:        []string{"Savings"},
	}, h.handle)
}

func (h *DeleteSavingHandler) handle(ctx context.Context, input *DeleteSavingInput) (*DeleteSavingOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := parseSavingID(input.ID)
	if err != nil {
		return nil, logFailure(ctx, "DeleteSaving", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteSavingMs")
	}
	err = h.SavingsService.DeleteSaving(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, logFailure(ctx, "DeleteSaving", err)
	}

	return &DeleteSavingOutput{Status: http.StatusNoContent}, nil
}
