// Пакет auth содержит мидлвари resty-клиента для установки служебных
// заголовков исходящих запросов.
package auth

import (
	"github.com/abezemskiy/portfolio/internal/client/identity"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// OnBeforeMiddleware - мидлварь для установки заголовков перед отправкой
// запроса на сервер. Если пользователь аутентифицирован, в заголовок
// Authorization устанавливается токен сессии. Каждый запрос дополнительно
// получает уникальный идентификатор для сопоставления с логами.
func OnBeforeMiddleware(tokens identity.ITokenStorage) resty.RequestMiddleware {
	return func(c *resty.Client, req *resty.Request) error {
		// Извлекаю токен сессии из хранилища. Пустой токен означает режим
		// просмотра - заголовок авторизации не устанавливается.
		if token := tokens.Get(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		// Устанавливаю идентификатор запроса
		req.Header.Set("X-Request-ID", uuid.NewString())
		return nil
	}
}
