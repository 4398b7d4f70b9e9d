package http

import (
	"weblog-stats/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParams = "QRY_1000"
	codeInvalidRequestBody = "REQ_1000"
	codeRequestBodyTooBig  = "REQ_1001"
)

// errInvalidQueryParams returns an error for malformed query parameters, e.g. a non-integer status.
func errInvalidQueryParams(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParams, msg, cause)
}

func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}

func errRequestBodyTooBig(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRequestBodyTooBig, "request body too large", cause)
}
