package models

// contextKey - приватный тип для ключей контекста, чтобы избежать коллизий.
type contextKey string

const (
	// UsernameContextKey используется как ключ для хранения имени пользователя в контексте gin.
	UsernameContextKey contextKey = "username"
)
