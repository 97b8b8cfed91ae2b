// Пакет identity содержит хранилище токена сессии и определение режима
// редактирования. Токен хранится только в оперативной памяти на время работы
// приложения и непрозрачен для клиента: его содержимое не разбирается и срок
// действия не проверяется.
package identity

import "sync"

// TokenStorage - структура для хранения токена сессии в оперативной памяти.
// Предоставляет методы для потокобезопасного использования.
type TokenStorage struct {
	mu    sync.RWMutex
	token string
}

// Set - метод для установки токена сессии после успешной аутентификации.
func (s *TokenStorage) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Get - метод для получения токена сессии. Возвращает пустую строку,
// если пользователь не аутентифицирован.
func (s *TokenStorage) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear - метод для удаления токена сессии при выходе пользователя.
func (s *TokenStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// ITokenStorage - интерфейс для сохранения и получения токена сессии.
type ITokenStorage interface {
	Set(token string) // метод для установки токена
	Get() string      // метод для получения токена
	Clear()           // метод для удаления токена
}

// IsAdmin - функция для определения режима редактирования.
// Единственный признак режима редактирования - наличие токена сессии.
// Вычисляется один раз на сборку интерфейса и передается в конструкторы страниц.
func IsAdmin(tokens ITokenStorage) bool {
	return tokens.Get() != ""
}
