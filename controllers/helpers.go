package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"comment-service/configs"
	"comment-service/responses"
	"comment-service/services"
)

const requestTimeout = 10 // seconds

func writeJSON(rw http.ResponseWriter, code int, payload interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	json.NewEncoder(rw).Encode(payload)
}

func errorResponse(rw http.ResponseWriter, code int, message string) {
	writeJSON(rw, code, responses.StatusResponse{Success: false, Message: message})
}

// serviceErrorResponse maps service errors onto the HTTP taxonomy:
// validation 400, not-author 403, unresolved ids 404, everything else a
// generic 500 that leaks no internals.
func serviceErrorResponse(rw http.ResponseWriter, err error) {
	switch {
	case services.IsValidation(err):
		errorResponse(rw, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotAuthor):
		errorResponse(rw, http.StatusForbidden, err.Error())
	case services.IsNotFound(err):
		errorResponse(rw, http.StatusNotFound, err.Error())
	default:
		configs.LogWithContext("comment-service", "controllers").Error("Unexpected error", "error", err)
		errorResponse(rw, http.StatusInternalServerError, "something went wrong")
	}
}
