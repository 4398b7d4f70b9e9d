package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpRoute  = "http_route"
	FieldHttpStatus = "http_status"

	FieldDuration      = "duration"
	FieldRequestID     = "request_id"
	FieldErrorStack    = "error_stack"
	FieldErrorCode     = "error_code"
	FieldErrorCategory = "error_category"

	FieldLoadID       = "load_id"
	FieldSource       = "source"
	FieldLineNumber   = "line_number"
	FieldParseReason  = "parse_reason"
	FieldRecordsCount = "records_count"
)
