package utils

import "net/http"

// Response is the JSON envelope every endpoint answers with. Data is
// serialized as null on errors.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Status: http.StatusOK, Message: message, Data: data}
}

// NewCreatedResponse wraps a freshly stored record.
func NewCreatedResponse(message string, data interface{}) Response {
	return Response{Status: http.StatusCreated, Message: message, Data: data}
}

func NewErrorResponse(status int, message string) Response {
	return Response{Status: status, Message: message}
}
