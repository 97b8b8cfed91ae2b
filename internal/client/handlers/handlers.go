// Пакет handlers содержит функции клиента для работы с REST API портфолио:
// загрузку работ и категорий, аутентификацию, добавление и удаление работ.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/abezemskiy/portfolio/internal/client/httpmsg"
	"github.com/abezemskiy/portfolio/internal/client/identity"
	"github.com/abezemskiy/portfolio/internal/client/logger"
	"github.com/abezemskiy/portfolio/internal/client/storage"
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// isSuccess - проверка, что статус ответа сервера находится в успешном диапазоне.
func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// FetchWorks - функция для загрузки списка работ с сервера.
// При ошибке транспортного уровня возвращается NetworkError,
// при неуспешном статусе ответа - HTTPError с этим статусом.
func FetchWorks(ctx context.Context, url string, client *resty.Client) ([]portfolio.Work, error) {
	var works []portfolio.Work
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&works).
		Get(url)

	// Не удалось установить соединение с сервером или другая ошибка подобного рода
	if err != nil {
		logger.ClientLog.Error("fetch works error", zap.String("error", error.Error(err)))
		return nil, httpmsg.NewNetworkError(err)
	}

	// Сервер вернул неуспешный статус
	if !isSuccess(resp.StatusCode()) {
		logger.ClientLog.Error("fetch works error", zap.String("status", strconv.Itoa(resp.StatusCode())))
		return nil, httpmsg.NewHTTPError(resp.StatusCode())
	}

	logger.ClientLog.Debug("successful fetch works from server", zap.Int("count", len(works)))
	return works, nil
}

// FetchCategories - функция для загрузки списка категорий с сервера.
func FetchCategories(ctx context.Context, url string, client *resty.Client) ([]portfolio.Category, error) {
	var categories []portfolio.Category
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&categories).
		Get(url)

	if err != nil {
		logger.ClientLog.Error("fetch categories error", zap.String("error", error.Error(err)))
		return nil, httpmsg.NewNetworkError(err)
	}

	if !isSuccess(resp.StatusCode()) {
		logger.ClientLog.Error("fetch categories error", zap.String("status", strconv.Itoa(resp.StatusCode())))
		return nil, httpmsg.NewHTTPError(resp.StatusCode())
	}

	logger.ClientLog.Debug("successful fetch categories from server", zap.Int("count", len(categories)))
	return categories, nil
}

// LoadPortfolio - функция для начальной загрузки портфолио.
// Работы и категории запрашиваются последовательно, хранилище обновляется
// только после получения обоих списков: фильтры никогда не строятся по
// недозагруженному списку работ.
func LoadPortfolio(ctx context.Context, worksURL, categoriesURL string, client *resty.Client, stor storage.WorksWriter) error {
	works, err := FetchWorks(ctx, worksURL, client)
	if err != nil {
		return fmt.Errorf("failed to load works, %w", err)
	}

	categories, err := FetchCategories(ctx, categoriesURL, client)
	if err != nil {
		return fmt.Errorf("failed to load categories, %w", err)
	}

	// Оба списка получены, обновляю хранилище
	stor.SetAll(works, categories)
	return nil
}

// Login - хэндлер для аутентификации пользователя.
// При успехе токен из тела ответа сохраняется в хранилище сессии.
// Функция не возвращает ошибку: при неудаче возвращается готовое
// сообщение для пользователя.
func Login(ctx context.Context, url string, authData *portfolio.LoginData, client *resty.Client,
	tokens identity.ITokenStorage) (ok bool, message string) {

	var result portfolio.LoginResponse
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(*authData).
		SetResult(&result).
		Post(url)

	// Не удалось установить соединение с сервером
	if err != nil {
		logger.ClientLog.Error("sending login request failed", zap.String("error", error.Error(err)))
		return false, httpmsg.ConnectionMessage
	}

	// Сервер отклонил аутентификацию
	if !isSuccess(resp.StatusCode()) {
		logger.ClientLog.Error("login rejected by server", zap.String("status", strconv.Itoa(resp.StatusCode())))
		return false, httpmsg.Translate(resp.StatusCode())
	}

	// Сервер вернул успешный статус, но токен в теле ответа отсутствует
	if result.Token == "" {
		logger.ClientLog.Error("login response does not contain token")
		return false, httpmsg.UnexpectedResponseMessage
	}

	// Сохраняю токен сессии
	tokens.Set(result.Token)

	logger.ClientLog.Info("user successfully authenticate")
	return true, ""
}

// CreateWork - хэндлер для добавления новой работы.
// Данные формы отправляются как multipart/form-data: название, идентификатор
// категории в виде целого числа и файл изображения. Заголовок авторизации
// устанавливается мидлварью клиента. Возвращает созданную сервером работу.
func CreateWork(ctx context.Context, url string, newWork *portfolio.NewWork, client *resty.Client) (*portfolio.Work, error) {
	var created portfolio.Work
	resp, err := client.R().
		SetContext(ctx).
		SetFile("image", newWork.ImagePath).
		SetFormData(map[string]string{
			"title":    newWork.Title,
			"category": strconv.Itoa(newWork.CategoryID),
		}).
		SetResult(&created).
		Post(url)

	if err != nil {
		logger.ClientLog.Error("push new work to server error", zap.String("error", error.Error(err)))
		return nil, httpmsg.NewNetworkError(err)
	}

	// Сервер отклонил запрос: например, слишком большой файл или
	// недействительный токен
	if !isSuccess(resp.StatusCode()) {
		logger.ClientLog.Error("push new work to server error", zap.String("status", strconv.Itoa(resp.StatusCode())))
		return nil, httpmsg.NewHTTPError(resp.StatusCode())
	}

	logger.ClientLog.Info("new work successfully created", zap.Int("id", created.ID), zap.String("title", created.Title))
	return &created, nil
}

// DeleteWork - хэндлер для удаления работы по идентификатору.
// Функция не возвращает ошибку: при неудаче возвращается готовое сообщение
// для пользователя, чтобы вызывающий код мог показать его в модальном окне.
func DeleteWork(ctx context.Context, url string, id int, client *resty.Client) (ok bool, message string) {
	resp, err := client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("%s/%d", url, id))

	// Не удалось установить соединение с сервером
	if err != nil {
		logger.ClientLog.Error("delete work on server error", zap.String("error", error.Error(err)), zap.Int("id", id))
		return false, httpmsg.ConnectionMessage
	}

	// Сервер вернул неуспешный статус
	if !isSuccess(resp.StatusCode()) {
		logger.ClientLog.Error("delete work on server error", zap.String("status", strconv.Itoa(resp.StatusCode())), zap.Int("id", id))
		return false, httpmsg.Translate(resp.StatusCode())
	}

	logger.ClientLog.Info("work successfully deleted", zap.Int("id", id))
	return true, ""
}
