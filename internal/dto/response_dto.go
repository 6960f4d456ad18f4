package dto

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type CreatedConfessionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ConfessionID string `json:"confessionId"`
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func Fail(message string) MessageResponse {
	return MessageResponse{Success: false, Message: message}
}

func OK(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
