package response

type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// FieldErrors reports per-field form errors keyed by the JSON field name.
func FieldErrors(msg string, fields map[string]string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
		Fields: fields,
	}
}
