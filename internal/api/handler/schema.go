package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. The actual rendering happens in the central error handler; the
// type lives here so the swagger annotations can reference it.
type errorResponse struct {
	Error string `json:"error"`
}
