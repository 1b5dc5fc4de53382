package dto

// ErrorResponse 统一错误响应体
type ErrorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// ImageDTO 图片
type ImageDTO struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
