package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/models"

	"github.com/valyala/fastjson"
)

const (
	maxLoadRequestBytes = 64 * 1024
	inlineSourceName    = "request-body"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type loadHandler struct {
	ingestionService ingestors.IngestionService
	maxInlineBytes   int64
	parsers          fastjson.ParserPool
}

// NewLoadHandler serves POST /loads. maxInlineBytes bounds a log sent as the request body.
func NewLoadHandler(ingestionService ingestors.IngestionService, maxInlineBytes int64) AppHttpHandler {
	return &loadHandler{
		ingestionService: ingestionService,
		maxInlineBytes:   maxInlineBytes,
	}
}

// Handle loads a log file named by a JSON body {"source": "<key>"}, or the log text itself
// when the body is sent as text/plain. Either way the record store is replaced.
func (h *loadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var (
		result *models.IngestionResult
		err    error
	)

	if strings.HasPrefix(contentType(r), contentTypePlainText) {
		body := r.Body
		if h.maxInlineBytes > 0 {
			body = http.MaxBytesReader(w, r.Body, h.maxInlineBytes)
		}
		result, err = h.ingestionService.Load(r.Context(), inlineSourceName, body)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errRequestBodyTooBig(err)
		}
	} else {
		source, bindErr := h.sourceFromBody(r)
		if bindErr != nil {
			return bindErr
		}
		result, err = h.ingestionService.LoadSource(r.Context(), source)
	}
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)
	return nil
}

func (h *loadHandler) sourceFromBody(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", errInvalidRequestBody("empty request body", nil)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxLoadRequestBytes+1))
	if err != nil {
		return "", errInvalidRequestBody("failed to read request body", err)
	}
	if len(body) > maxLoadRequestBytes {
		return "", errRequestBodyTooBig(nil)
	}

	p := h.parsers.Get()
	defer h.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return "", errInvalidRequestBody("invalid json", err)
	}
	sourceValue := v.Get("source")
	if sourceValue == nil || sourceValue.Type() != fastjson.TypeString {
		return "", errInvalidRequestBody(`"source" must be a string`, nil)
	}
	source := strings.TrimSpace(string(sourceValue.GetStringBytes()))
	if source == "" {
		return "", errInvalidRequestBody(`"source" is required`, nil)
	}
	return source, nil
}
