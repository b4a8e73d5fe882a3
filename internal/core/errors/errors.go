package errors

const (
	HttpInternalError       = "internal_error"
	HttpInvalidRequestError = "invalid_request"
	HttpInvalidCSVError     = "invalid_csv"
	HttpUnknownTableError   = "unknown_table"
	HttpReportNotFoundError = "report_not_found"
)

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
