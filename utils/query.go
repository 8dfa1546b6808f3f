package utils

import (
	"net/http"
	"strconv"
	"strings"

	"reservation-service/models"
)

// ParsePage reads ?page= and ?limit= from the query string. Missing or
// malformed values fall back to the defaults; the result is clamped.
func ParsePage(r *http.Request) models.Page {
	q := r.URL.Query()
	return models.NewPage(queryInt(q.Get("page")), queryInt(q.Get("limit")))
}

func queryInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
