package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
)

const (
	contentTypeJSON      = "application/json"
	contentTypePlainText = "text/plain"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get(headerContentType)))
}
