// Пакет checker содержит вспомогательные функции для клиентской валидации
// вводимых пользователем данных. Ошибки валидации до сетевого слоя не доходят.
package checker

import "regexp"

// emailRegexp - шаблон для проверки общей формы адреса электронной почты.
var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CheckEmail - функция для проверки корректности адреса электронной почты.
func CheckEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// CheckPassword - функция для проверки корректности пароля.
func CheckPassword(password string) bool {
	// проверяю, что пароль не является пустой строкой
	return password != ""
}

// ValidationError - ошибка клиентской валидации: незаполненное поле,
// неподходящий тип или размер файла, некорректный email.
type ValidationError struct {
	Message string // сообщение для пользователя
}

func (e *ValidationError) Error() string {
	return e.Message
}
