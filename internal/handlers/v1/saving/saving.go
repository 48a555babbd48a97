package saving

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/carson-networks/savings-server/internal/apperrors"
	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/service"
)

// SavingResponse is the wire form of a saving.
type SavingResponse struct {
	ID        int64  `json:"id" doc:"Saving ID"`
	Amount    string `json:"amount" doc:"Decimal amount"`
	Source    string `json:"source" doc:"Origin of the saved amount"`
	CreatedAt string `json:"created_at" format:"date-time" doc:"Creation time, RFC 3339 UTC"`
	UpdatedAt string `json:"updated_at" format:"date-time" doc:"Last update time, RFC 3339 UTC"`
}

func savingResponse(s *service.Saving) SavingResponse {
	return SavingResponse{
		ID:        s.ID,
		Amount:    s.Amount.String(),
		Source:    s.Source,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// parseSavingID validates the id path parameter before anything touches the
// service or the store. Non-numeric and non-positive ids never leave the
// handler.
func parseSavingID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest("Saving ID must be a positive integer")
	}
	return id, nil
}

// logFailure records the full error detail before it is reduced to the fixed
// taxonomy envelope. Client mistakes log at warn, everything else at error.
func logFailure(ctx context.Context, loggingName string, err error) error {
	logData := logging.GetLogData(ctx)
	if logData == nil {
		return err
	}

	entry := logData.Log().WithError(err)
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.GetStatus() < http.StatusInternalServerError {
		entry.Warnf("Handler.%v.Rejected", loggingName)
	} else {
		entry.Errorf("Handler.%v.Error", loggingName)
	}
	return err
}
