package models

// Credential - пара логин/пароль, заданная конфигурацией при старте.
type Credential struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// DefaultCredentials - встроенные учётные записи demo и admin.
func DefaultCredentials() []Credential {
	return []Credential{
		{Username: "demo", Password: "password123"},
		{Username: "admin", Password: "admin"},
	}
}
