package saving

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/savings-server/internal/apperrors"
	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/service"
	"github.com/carson-networks/savings-server/internal/validation"
)

// UpdateSavingBody is the request body for updating a saving. Both fields are
// optional; the service rejects an update that sets neither.
type UpdateSavingBody struct {
	Amount *string `json:"amount,omitempty" doc:"Decimal amount, must be greater than 0 when present"`
	Source *string `json:"source,omitempty" doc:"Origin of the saved amount, 1-255 characters when present"`
}

// UpdateSavingInput is the Huma input for updating a saving.
type UpdateSavingInput struct {
	ID   string `path:"id" doc:"Saving ID, a positive integer"`
	Body UpdateSavingBody
}

// UpdateSavingOutput is the Huma output for updating a saving.
type UpdateSavingOutput struct {
	Body SavingResponse
}

// savingUpdater is the interface for updating savings.
type savingUpdater interface {
	UpdateSaving(ctx context.Context, id int64, patch service.SavingPatch) (*service.Saving, error)
}

// UpdateSavingHandler handles PATCH and PUT /savings/{id} with identical
// partial-update semantics.
type UpdateSavingHandler struct {
	SavingsService savingUpdater
}

// NewUpdateSavingHandler creates a new UpdateSavingHandler.
func NewUpdateSavingHandler(svc savingUpdater) *UpdateSavingHandler {
	return &UpdateSavingHandler{SavingsService: svc}
}

// Register registers the update saving endpoints with the Huma API.
func (h *UpdateSavingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-saving",
		Method:      http.MethodPatch,
		Path:        "/savings/{id}",
		Summary:     "Update saving",
		Description: "Applies a partial update to a savings transaction.",
		Tags:        []string{"Savings"},
	}, h.handle)
	huma.Register(api, huma.Operation{
		OperationID: "update-saving-put",
		Method:      http.MethodPut,
		Path:        "/savings/{id}",
		Summary:     "Update saving",
		Description: "Applies a partial update to a savings transaction.",
		Tags:        []string{"Savings"},
	}, h.handle)
}

func parseUpdateSavingInput(input *UpdateSavingInput) (int64, service.SavingPatch, error) {
	id, err := parseSavingID(input.ID)
	if err != nil {
		return 0, service.SavingPatch{}, err
	}

	var amount *decimal.Decimal
	if input.Body.Amount != nil {
		parsed, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return 0, service.SavingPatch{}, apperrors.BadRequest("invalid amount")
		}
		amount = &parsed
	}

	if fieldErrs := validation.ValidateUpdate(amount, input.Body.Source); len(fieldErrs) > 0 {
		return 0, service.SavingPatch{}, apperrors.ValidationFailed(validation.Details(fieldErrs))
	}

	var patch service.SavingPatch
	if amount != nil {
		patch.Amount = omit.From(*amount)
	}
	if input.Body.Source != nil {
		patch.Source = omit.From(*input.Body.Source)
	}
	return id, patch, nil
}

func (h *UpdateSavingHandler) handle(ctx context.Context, input *UpdateSavingInput) (*UpdateSavingOutput, error) {
	logData := logging.GetLogData(ctx)

	id, patch, err := parseUpdateSavingInput(input)
	if err != nil {
		return nil, logFailure(ctx, "UpdateSaving", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateSavingMs")
	}
	row, err := h.SavingsService.UpdateSaving(ctx, id, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, logFailure(ctx, "UpdateSaving", err)
	}

	return &UpdateSavingOutput{Body: savingResponse(row)}, nil
}
