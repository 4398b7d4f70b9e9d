package ingestors

import (
	"fmt"

	"weblog-stats/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeInvalidSourceKey = "ING_1000"
	codeSourceNotFound   = "ING_1001"
	codeSourceTooLarge   = "ING_1002"
	codeLineTooLong      = "ING_1003"

	codeInternalSourceReadFailed = "ING_9000"
	codeInternalLoadCancelled    = "ING_9001"
)

// errInvalidSourceKey returns an error when a source key is empty or escapes the source root.
func errInvalidSourceKey(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSourceKey, fmt.Sprintf("invalid log source %q", key), cause)
}

// errSourceNotFound returns an error when no log file exists under the key.
func errSourceNotFound(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSourceNotFound, fmt.Sprintf("log source %q not found", key), cause)
}

func errSourceTooLarge(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeSourceTooLarge, "log source exceeds the configured size limit", cause)
}

func errLineTooLong(lineNumber, maxBytes int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLineTooLong, fmt.Sprintf("line %d exceeds %d bytes", lineNumber, maxBytes), cause)
}

// errInternalSourceReadFailed returns an error when the source cannot be opened or read.
func errInternalSourceReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed: %w", cause))
}

func errInternalLoadCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLoadCancelled, fmt.Errorf("loadCancelled: %w", cause))
}
