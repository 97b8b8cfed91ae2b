// Пакет authorize реализует страницу аутентификации администратора.
package authorize

import (
	"context"

	"github.com/abezemskiy/portfolio/internal/client/handlers"
	"github.com/abezemskiy/portfolio/internal/client/identity"
	"github.com/abezemskiy/portfolio/internal/client/logger"
	"github.com/abezemskiy/portfolio/internal/client/tui"
	"github.com/abezemskiy/portfolio/internal/client/tui/app"
	"github.com/abezemskiy/portfolio/internal/common/tools/checker"
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page - строит страницу аутентификации. Ошибки валидации и неуспешного
// входа показываются под формой, страница при этом не пересобирается.
func Page(ctx context.Context, url string, client *resty.Client, tokens identity.ITokenStorage) func(tapp *app.App) tview.Primitive {
	return func(tapp *app.App) tview.Primitive {
		var email, password string

		// Область ошибок под формой
		errorField := tview.NewTextView()
		errorField.SetTextColor(tcell.ColorRed)

		form := tview.NewForm()
		form.AddInputField("Email", "", 30, nil, func(text string) {
			email = text
		})
		form.AddPasswordField("Пароль", "", 30, '*', func(text string) {
			password = text
		})
		form.AddButton("Войти", func() {
			errorField.SetText("")

			// Валидация полей до обращения к серверу
			if !checker.CheckEmail(email) {
				errorField.SetText("Некорректный адрес электронной почты")
				return
			}
			if !checker.CheckPassword(password) {
				errorField.SetText("Пароль не может быть пустым")
				return
			}

			authData := &portfolio.LoginData{
				Email:    email,
				Password: password,
			}

			// Аутентификация пользователя на сервере
			ok, message := handlers.Login(ctx, url, authData, client, tokens)
			if !ok {
				logger.ClientLog.Info("login attempt failed", zap.String("message", message))
				errorField.SetText(message)
				return
			}

			// Токен сохранен: интерфейс пересобирается целиком, страницы
			// строятся заново уже в режиме редактирования
			tapp.Reload()
		})
		form.AddButton("Назад", func() {
			errorField.SetText("")
			tapp.SwitchTo(tui.Home)
		})

		form.SetBorder(true)
		form.SetTitle("Вход")
		form.SetTitleAlign(tview.AlignCenter)

		return tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(form, 9, 1, true).
			AddItem(errorField, 1, 1, false)
	}
}
