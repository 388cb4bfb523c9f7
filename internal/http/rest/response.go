package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mkamau2/jiseti/util"
	"github.com/mkamau2/jiseti/util/tracing"
)

// ServerResponse is the envelope every handler returns. Error carries the
// client-facing message for failures; Data carries the payload otherwise.
type ServerResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"-"`
}

// respondWithError logs the underlying error against the request id and
// returns an envelope carrying only the client-facing message. Internal
// detail never reaches the client.
func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Printf("[%s] %s: %v", requestID(tc), message, err)
	}
	return &ServerResponse{
		Status:     status,
		Error:      message,
		StatusCode: util.StatusCode(status),
	}
}

func requestID(tc *tracing.Context) string {
	if tc == nil {
		return "-"
	}
	return tc.RequestID
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Println("failed to write response body:", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	resp := ServerResponse{
		Status:     status,
		Error:      message,
		StatusCode: util.StatusCode(status),
	}
	body, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, resp.StatusCode)
		return
	}
	writeJSONResponse(w, body, resp.StatusCode)
}
