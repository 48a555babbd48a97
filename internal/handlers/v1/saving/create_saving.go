package saving

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/savings-server/internal/apperrors"
	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/service"
	"github.com/carson-networks/savings-server/internal/validation"
)

// CreateSavingBody is the request body for creating a saving.
type CreateSavingBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount, must be greater than 0"`
	Source string `json:"source" required:"true" doc:"Origin of the saved amount"`
}

// CreateSavingInput is the Huma input for creating a saving.
type CreateSavingInput struct {
	Body CreateSavingBody
}

// CreateSavingOutput is the Huma output for creating a saving.
type CreateSavingOutput struct {
	Status int
	Body   SavingResponse
}

// savingCreator is the interface for creating savings.
type savingCreator interface {
	CreateSaving(ctx context.Context, create service.CreateSaving) (*service.Saving, error)
}

// CreateSavingHandler handles POST /new-saving.
type CreateSavingHandler struct {
	SavingsService savingCreator
}

// NewCreateSavingHandler creates a new CreateSavingHandler.
func NewCreateSavingHandler(svc savingCreator) *CreateSavingHandler {
	return &CreateSavingHandler{SavingsService: svc}
}

// Register registers the create saving endpoint with the Huma API.
func (h *CreateSavingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-saving",
		Method:      http.MethodPost,
		Path:        "/new-saving",
		Summary:     "Create saving",
		Description: "Creates a new savings transaction.",
		Tags:        []string{"Savings"},
	}, h.handle)
}

func parseCreateSavingInput(input *CreateSavingInput) (service.CreateSaving, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.CreateSaving{}, apperrors.BadRequest("invalid amount")
	}

	if fieldErrs := validation.ValidateCreate(amount, input.Body.Source); len(fieldErrs) > 0 {
		return service.CreateSaving{}, apperrors.ValidationFailed(validation.Details(fieldErrs))
	}

	return service.CreateSaving{
		Amount: amount,
		Source: input.Body.Source,
	}, nil
}

func (h *CreateSavingHandler) handle(ctx context.Context, input *CreateSavingInput) (*CreateSavingOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateSavingInput(input)
	if err != nil {
		return nil, logFailure(ctx, "CreateSaving", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createSavingMs")
	}
	row, err := h.SavingsService.CreateSaving(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, logFailure(ctx, "CreateSaving", err)
	}

	if logData != nil {
		logData.AddData("savingID", row.ID)
	}

	return &CreateSavingOutput{
		Status: http.StatusCreated,
		Body:   savingResponse(row),
	}, nil
}
