package models

// VideoTaskResult - результат запроса на генерацию видео (реального или заглушки).
// Незаполненные поля сериализуются как null.
type VideoTaskResult struct {
	TaskID   *string `json:"task_id"`
	VideoURL *string `json:"video_url"`
	Message  *string `json:"message"`
}

// StringPtr возвращает указатель на копию строки.
func StringPtr(s string) *string {
	return &s
}
