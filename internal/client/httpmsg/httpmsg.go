// Пакет httpmsg преобразует ошибки сетевого слоя в сообщения для пользователя.
// Здесь же определены типы ошибок клиента API: HTTPError для неуспешных
// статусов ответа и NetworkError для ошибок транспортного уровня.
package httpmsg

import (
	"errors"
	"fmt"
)

// ConnectionMessage - сообщение для ошибок транспортного уровня,
// когда ответ от сервера получить не удалось.
const ConnectionMessage = "Ошибка соединения с сервером. Проверьте подключение к сети."

// UnexpectedResponseMessage - сообщение для случая, когда сервер вернул
// успешный статус, но тело ответа обработать не удалось.
const UnexpectedResponseMessage = "Некорректный ответ сервера. Попробуйте позже."

// HTTPError - ошибка, соответствующая неуспешному статусу ответа сервера.
type HTTPError struct {
	Status int // статус ответа сервера
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Status)
}

// NewHTTPError - фабричная функция для создания ошибки по статусу ответа сервера.
func NewHTTPError(status int) error {
	return &HTTPError{Status: status}
}

// NetworkError - ошибка транспортного уровня: ответ от сервера не получен
// (обрыв соединения, недоступность адреса и тому подобное).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error, %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError - фабричная функция для создания ошибки транспортного уровня.
func NewNetworkError(err error) error {
	return &NetworkError{Err: err}
}

// Translate - чистая функция преобразования статуса ответа сервера в сообщение
// для пользователя. Для статусов вне таблицы возвращается общее сообщение
// с числовым кодом.
func Translate(status int) string {
	switch status {
	// 4xx - ошибки клиента
	case 400:
		return "Некорректный запрос. Проверьте введенные данные."
	case 401:
		return "Неверный email или пароль. Попробуйте еще раз."
	case 402:
		return "Для доступа к ресурсу требуется оплата."
	case 403:
		return "У вас нет прав для выполнения этого действия."
	case 404:
		return "Ресурс не найден."
	case 405:
		return "Метод не поддерживается для этого ресурса."
	case 406:
		return "Неприемлемый формат ответа."
	case 407:
		return "Требуется аутентификация на прокси-сервере."
	case 408:
		return "Время ожидания запроса истекло. Попробуйте еще раз."
	case 409:
		return "Обнаружен конфликт. Проверьте введенные данные."
	case 410:
		return "Запрошенный ресурс больше не существует."
	case 411:
		return "Требуется указать длину запроса."
	case 412:
		return "Предусловие запроса не выполнено."
	case 413:
		return "Размер запроса слишком велик."
	case 414:
		return "Слишком длинный адрес запроса."
	case 415:
		return "Неподдерживаемый тип данных."
	case 416:
		return "Запрошенный диапазон недостижим."
	case 417:
		return "Ожидание запроса не выполнено."
	case 418:
		return "Я - чайник."
	case 422:
		return "Необрабатываемая сущность."
	case 425:
		return "Слишком рано для обработки запроса."
	case 426:
		return "Требуется обновление протокола."
	case 428:
		return "Требуется предусловие."
	case 429:
		return "Слишком много запросов. Подождите немного."
	case 431:
		return "Поля заголовков слишком велики."
	case 451:
		return "Недоступно по юридическим причинам."

	// 5xx - ошибки сервера
	case 500:
		return "Ошибка сервера. Попробуйте позже."
	case 501:
		return "Функциональность не реализована."
	case 502:
		return "Ошибка шлюза."
	case 503:
		return "Сервис недоступен. Попробуйте позже."
	case 504:
		return "Время ожидания шлюза истекло."
	case 505:
		return "Версия HTTP не поддерживается."
	case 506:
		return "Ошибка согласования варианта."
	case 507:
		return "Недостаточно места в хранилище."
	case 508:
		return "Обнаружена петля."
	case 510:
		return "Требуемое расширение не поддерживается."
	case 511:
		return "Требуется сетевая аутентификация."

	default:
		return fmt.Sprintf("Неожиданная ошибка (%d).", status)
	}
}

// FromError - единая воронка ошибок клиента API: преобразует ошибку в
// сообщение для пользователя. Ошибки транспортного уровня получают отдельное
// сообщение о проблеме соединения, а не сообщение по статусу ответа.
func FromError(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return Translate(httpErr.Status)
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return ConnectionMessage
	}
	return UnexpectedResponseMessage
}
