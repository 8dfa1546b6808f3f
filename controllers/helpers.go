package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"reservation-service/configs"
	"reservation-service/middleware"
	"reservation-service/responses"
)

func writeJSON(rw http.ResponseWriter, code int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		configs.LogWithContext("controllers", "writeJSON").WithError(err).Warn("Failed to encode response")
	}
}

// decodeJSON reads at most maxBodyBytes of JSON into v. On failure it
// returns the status to answer with.
func decodeJSON(rw http.ResponseWriter, r *http.Request, v interface{}) (int, error) {
	err := json.NewDecoder(http.MaxBytesReader(rw, r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return 0, nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, err
	}
	return http.StatusBadRequest, err
}

func errorResponse(rw http.ResponseWriter, code int, message string) {
	writeJSON(rw, code, responses.ErrorResponse{Success: false, Message: message})
}

func validationResponse(rw http.ResponseWriter, message string, errs map[string]string) {
	writeJSON(rw, http.StatusBadRequest, responses.ErrorResponse{Success: false, Message: message, Errors: errs})
}

// serverErrorResponse logs err and answers 500. The error text is only
// exposed in development.
func (c *Controller) serverErrorResponse(rw http.ResponseWriter, r *http.Request, log *logrus.Entry, err error, message string) {
	log.WithError(err).WithField("request_id", middleware.RequestID(r.Context())).Error(message)
	body := responses.ErrorResponse{Success: false, Message: message}
	if c.DevMode {
		body.Details = err.Error()
	}
	writeJSON(rw, http.StatusInternalServerError, body)
}

func successResponse(rw http.ResponseWriter, code int, body interface{}) {
	writeJSON(rw, code, body)
}
