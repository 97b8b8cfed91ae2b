// Пакет inmemory реализует общее хранилище работ портфолио в оперативной
// памяти. Список загружается один раз при открытии страницы и изменяется
// только операциями добавления и удаления.
package inmemory

import (
	"sync"

	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"
)

// WorksStorage - потокобезопасное хранилище работ и категорий портфолио.
// При каждом изменении списка синхронно вызываются функции перерисовки
// подписанных представлений, поэтому устаревших копий списка не существует.
type WorksStorage struct {
	mu          sync.RWMutex
	works       []portfolio.Work
	categories  []portfolio.Category
	subscribers []func()
}

// NewWorksStorage - фабричная функция для создания хранилища работ.
func NewWorksStorage() *WorksStorage {
	return &WorksStorage{}
}

// SetAll - метод для замены содержимого хранилища целиком.
// Используется при начальной загрузке и при обновлении с сервера:
// работы и категории устанавливаются только вместе, чтобы фильтры
// никогда не строились по недозагруженному списку.
func (s *WorksStorage) SetAll(works []portfolio.Work, categories []portfolio.Category) {
	s.mu.Lock()
	s.works = make([]portfolio.Work, len(works))
	copy(s.works, works)
	s.categories = make([]portfolio.Category, len(categories))
	copy(s.categories, categories)
	s.mu.Unlock()

	s.notify()
}

// GetWorks - метод для получения списка работ в порядке добавления.
func (s *WorksStorage) GetWorks() []portfolio.Work {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Копирую оригинальный слайс данных для обеспечения потокобезопасности
	copied := make([]portfolio.Work, len(s.works))
	copy(copied, s.works)
	return copied
}

// GetCategories - метод для получения списка категорий.
func (s *WorksStorage) GetCategories() []portfolio.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]portfolio.Category, len(s.categories))
	copy(copied, s.categories)
	return copied
}

// AddWork - метод для добавления работы в конец списка.
// Добавляется объект, возвращенный сервером после успешной загрузки.
func (s *WorksStorage) AddWork(work portfolio.Work) {
	s.mu.Lock()
	s.works = append(s.works, work)
	s.mu.Unlock()

	s.notify()
}

// DeleteWork - метод для удаления работы по идентификатору.
// Возвращает false, если работа с таким идентификатором не найдена.
// Порядок оставшихся работ сохраняется.
func (s *WorksStorage) DeleteWork(id int) bool {
	s.mu.Lock()
	index := -1
	for i, w := range s.works {
		if w.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return false
	}
	s.works = append(s.works[:index], s.works[index+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// Subscribe - метод для регистрации функции перерисовки представления.
// Функция будет синхронно вызываться после каждого изменения списка работ.
func (s *WorksStorage) Subscribe(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, f)
}

// ResetSubscribers - метод для удаления всех подписчиков.
// Вызывается при пересборке интерфейса, чтобы прежние представления
// не перерисовывались повторно.
func (s *WorksStorage) ResetSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = nil
}

// notify - вызывает функции перерисовки всех подписанных представлений.
// Вызывается после освобождения мьютекса: подписчики читают хранилище.
func (s *WorksStorage) notify() {
	s.mu.RLock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, f := range subscribers {
		f()
	}
}
