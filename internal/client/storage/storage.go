// Пакет storage определяет интерфейсы общего хранилища работ портфолио.
// Хранилище одно на все представления: главная галерея, панель фильтров и
// галерея модального окна читают один и тот же список, поэтому изменения
// видны везде без повторной загрузки с сервера.
package storage

import (
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"
)

type (
	// WorksReader - интерфейс для чтения списка работ и категорий.
	WorksReader interface {
		GetWorks() []portfolio.Work          // Возвращает работы в порядке добавления.
		GetCategories() []portfolio.Category // Возвращает список категорий.
	}

	// WorksWriter - интерфейс для изменения общего списка работ.
	// Каждое изменение синхронно оповещает подписчиков.
	WorksWriter interface {
		SetAll(works []portfolio.Work, categories []portfolio.Category) // Заменяет содержимое хранилища целиком.
		AddWork(work portfolio.Work)                                    // Добавляет работу в конец списка.
		DeleteWork(id int) bool                                         // Удаляет работу по идентификатору.
	}

	// WorksSubscriber - интерфейс подписки представлений на изменения списка работ.
	WorksSubscriber interface {
		Subscribe(f func()) // Регистрирует функцию перерисовки представления.
		ResetSubscribers()  // Удаляет всех подписчиков при пересборке интерфейса.
	}

	// IWorksStorage - интерфейс общего хранилища работ.
	IWorksStorage interface {
		WorksReader
		WorksWriter
		WorksSubscriber
	}
)
