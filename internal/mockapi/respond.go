package mockapi

import (
	"context"
	"encoding/json"
	"net/http"

	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
)

// envelope mirrors types.Envelope with an open data field so handlers can
// hand any payload straight to the encoder.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

func writeDataToken(w http.ResponseWriter, data any, token string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Token: token})
}

func writeError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	status := meta.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if logg != nil && status >= http.StatusInternalServerError {
		logg.Error(ctx, "request failed", err)
	}

	writeJSON(w, status, envelope{Success: false, Message: pkgerrors.UserMessage(typed)})
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request body is not valid JSON")
	}
	return nil
}
