package auth

import "campaign-server/internal/models"

// CredentialStore - неизменяемое отображение username -> password.
// Создается один раз при старте, после этого только чтение.
type CredentialStore struct {
	passwords map[string]string
}

// NewCredentialStore создает хранилище из списка учетных записей.
// При повторе username побеждает последняя запись.
func NewCredentialStore(creds []models.Credential) *CredentialStore {
	passwords := make(map[string]string, len(creds))
	for _, c := range creds {
		passwords[c.Username] = c.Password
	}
	return &CredentialStore{passwords: passwords}
}

// Verify проверяет пару логин/пароль точным сравнением строк.
func (s *CredentialStore) Verify(username, password string) bool {
	expected, ok := s.passwords[username]
	return ok && expected == password
}

// Has сообщает, существует ли пользователь.
func (s *CredentialStore) Has(username string) bool {
	_, ok := s.passwords[username]
	return ok
}
