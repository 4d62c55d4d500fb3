package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode    int       `json:"statusCode"`
	IsSuccess     bool      `json:"isSuccess"`
	Message       string    `json:"message"`
	Data          any       `json:"data"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlationId"`
	Errors        []string  `json:"errors"`
}

// NewResponse stamps the envelope with the current UTC time. An empty
// correlationID is replaced with a fresh UUID.
func NewResponse(code int, message string, data any, errors []string, correlationID string) Response {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	if errors == nil {
		errors = []string{}
	}
	return Response{
		StatusCode:    code,
		IsSuccess:     isSuccessStatus(code),
		Message:       message,
		Data:          data,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Errors:        errors,
	}
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, r *http.Request, code int, message string, data any, errors []string) {
	var correlationID string
	if r != nil {
		correlationID, _ = GetCorrelationID(r.Context())
	}
	response := NewResponse(code, message, data, errors, correlationID)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(CorrelationHeader, response.CorrelationID)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, r *http.Request, message string, data any) {
	ResponseJSON(w, r, http.StatusOK, message, data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, r *http.Request, message string, data any) {
	ResponseJSON(w, r, http.StatusCreated, message, data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, r *http.Request, message string, errors []string) {
	ResponseJSON(w, r, http.StatusBadRequest, message, nil, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, r *http.Request, message string) {
	ResponseJSON(w, r, http.StatusNotFound, message, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, r *http.Request, message string) {
	ResponseJSON(w, r, http.StatusConflict, message, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, r *http.Request, message string) {
	ResponseJSON(w, r, http.StatusInternalServerError, message, nil, nil)
}
