package main

// ImageResponse описывает одно изображение в JSON-ответе
type ImageResponse struct {
	ID     string `json:"id"`
	RawURL string `json:"raw_url"`
}

// ImageListResponse описывает список изображений
type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
