// Пакет portfolio содержит общие структуры данных портфолио,
// которыми обмениваются клиент и сервер.
package portfolio

// Category - категория работ. Используется для фильтрации галереи и для
// выбора категории в форме добавления работы. Со стороны клиента категории
// доступны только для чтения.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Work - работа портфолио: изображение с названием и категорией.
// Создается на сервере при отправке формы добавления, идентичность определяется полем ID.
type Work struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	ImageURL   string   `json:"imageUrl"`
	CategoryID int      `json:"categoryId"`
	Category   Category `json:"category"`
}

// LoginData - тело запроса аутентификации пользователя.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - тело ответа сервера при успешной аутентификации.
// Клиент сохраняет только токен, идентификатор пользователя не используется.
type LoginResponse struct {
	UserID int    `json:"userId"`
	Token  string `json:"token"`
}

// NewWork - данные формы добавления новой работы. Живут только пока открыта
// форма и уничтожаются после отправки или отмены.
type NewWork struct {
	Title      string // название работы
	CategoryID int    // идентификатор выбранной категории
	ImagePath  string // путь к файлу изображения
}
