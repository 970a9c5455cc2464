package serverutils

type ErrorDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BaseResponse[T any] struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    T            `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorResponseWithDetail adds the toast title and description the client
// shows for err.
func ErrorResponseWithDetail(err *AppError) BaseResponse[any] {
	res := ErrorResponse(err.Status, err.Message())
	res.Error = &ErrorDetail{Title: err.Title, Description: err.Description}
	return res
}
