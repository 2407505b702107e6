package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jcpaschoal/admindashboard/foundation/otel"
	"go.opentelemetry.io/otel/attribute"
)

type httpStatus interface {
	HTTPStatus() int
}

// envelope is the shape of every response body produced by the service.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Respond sends a response to the client wrapped in the response envelope.
// An Encoder that is also an error produces a failure envelope; its status
// comes from HTTPStatus when implemented, otherwise it is a 500 whose cause
// is not exposed. Everything else produces a success envelope with a 200
// unless the value reports its own status.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {

	// If the context has been canceled, it means the client is no longer
	// waiting for a response.
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("client disconnected, do not send response")
		}
	}

	statusCode := http.StatusOK
	env := envelope{Success: true}

	switch v := resp.(type) {
	case error:
		statusCode = http.StatusInternalServerError
		env = envelope{Success: false, Error: http.StatusText(statusCode)}

		if hs, ok := v.(httpStatus); ok {
			statusCode = hs.HTTPStatus()
			env.Error = v.Error()
		}

	case nil:

	default:
		if hs, ok := v.(httpStatus); ok {
			statusCode = hs.HTTPStatus()
		}

		data, _, err := resp.Encode()
		if err != nil {
			return fmt.Errorf("respond: encode: %w", err)
		}
		env.Data = data
	}

	_, span := otel.AddSpan(ctx, "web.send.response", attribute.Int("status", statusCode))
	defer span.End()

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("respond: marshal: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("respond: write: %w", err)
	}

	return nil
}
