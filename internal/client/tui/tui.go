// Пакет tui содержит имена страниц TUI-приложения.
package tui

// Имена страниц приложения.
const (
	Home  = "home"  // главная страница: галерея работ и панель фильтров
	Login = "login" // страница аутентификации
	Modal = "modal" // модальное окно режима редактирования
)
