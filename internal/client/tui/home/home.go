// Пакет home реализует главную страницу портфолио: галерею работ,
// панель фильтров по категориям и кнопки действий.
package home

import (
	"context"

	"github.com/abezemskiy/portfolio/internal/client/filter"
	"github.com/abezemskiy/portfolio/internal/client/handlers"
	"github.com/abezemskiy/portfolio/internal/client/httpmsg"
	"github.com/abezemskiy/portfolio/internal/client/identity"
	"github.com/abezemskiy/portfolio/internal/client/logger"
	"github.com/abezemskiy/portfolio/internal/client/storage"
	"github.com/abezemskiy/portfolio/internal/client/tui"
	"github.com/abezemskiy/portfolio/internal/client/tui/app"
	"github.com/abezemskiy/portfolio/internal/client/tui/modal"
	"github.com/abezemskiy/portfolio/internal/client/tui/tools/printer"
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page - строит главную страницу портфолио. Страница создается заново при
// каждой пересборке интерфейса, поэтому режим редактирования фиксируется
// в момент сборки и не меняется до следующей пересборки.
func Page(ctx context.Context, worksURL, categoriesURL string, client *resty.Client, stor storage.IWorksStorage,
	tokens identity.ITokenStorage, admin bool, modalCtrl *modal.Controller) func(tapp *app.App) tview.Primitive {

	return func(tapp *app.App) tview.Primitive {
		// Заголовок страницы
		header := tview.NewTextView()
		header.SetTextColor(tcell.ColorYellow)
		if admin {
			// баннер режима редактирования
			header.SetText("Портфолио архитектора - режим редактирования")
		} else {
			header.SetText("Портфолио архитектора")
		}

		// Галерея работ
		gallery := tview.NewTable()
		gallery.SetBorders(true)

		// Панель фильтров
		filterRow := tview.NewFlex().SetDirection(tview.FlexColumn)

		// Текущий фильтр живет в замыкании страницы и сбрасывается вместе
		// с ней при пересборке интерфейса
		activeFilter := filter.All

		renderGallery := func() {
			renderWorks(gallery, filter.ByCategory(stor.GetWorks(), activeFilter))
		}

		// Кнопка "Все" плюс кнопка на каждую категорию. В режиме
		// редактирования панель фильтров скрыта.
		var filterButtons []*tview.Button
		setActive := func(active *tview.Button) {
			for _, b := range filterButtons {
				b.SetBackgroundColor(tcell.ColorDarkBlue)
			}
			active.SetBackgroundColor(tcell.ColorDarkGreen)
		}
		renderFilters := func() {
			filterRow.Clear()
			filterButtons = nil
			if admin {
				// в режиме редактирования фильтры скрыты
				return
			}

			names := []string{filter.All}
			for _, cat := range stor.GetCategories() {
				names = append(names, cat.Name)
			}
			for _, name := range names {
				name := name
				button := tview.NewButton(name)
				button.SetSelectedFunc(func() {
					// выбранная кнопка становится единственной активной,
					// галерея перерисовывается по выбранной категории
					// без обращения к серверу
					activeFilter = name
					setActive(button)
					renderGallery()
				})
				filterButtons = append(filterButtons, button)
				filterRow.AddItem(button, len([]rune(name))+4, 1, false)
			}
			// фильтр "Все" активен по умолчанию
			setActive(filterButtons[0])
		}

		// Кнопки действий
		refreshButton := tview.NewButton("Обновить")
		refreshButton.SetSelectedFunc(func() {
			if err := handlers.LoadPortfolio(ctx, worksURL, categoriesURL, client, stor); err != nil {
				// галерея продолжает показывать прежний список,
				// ошибка показывается во всплывающем окне
				logger.ClientLog.Error("refresh portfolio error", zap.String("error", error.Error(err)))
				printer.Error(tapp, httpmsg.FromError(err))
				return
			}
			// после обновления фильтр сбрасывается на "Все"
			activeFilter = filter.All
			renderFilters()
			renderGallery()
		})

		buttons := tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(refreshButton, 14, 1, false)
		actionButtons := []*tview.Button{refreshButton}

		if admin {
			editButton := tview.NewButton("Редактировать")
			editButton.SetSelectedFunc(func() { modalCtrl.Open() })

			logoutButton := tview.NewButton("Выйти")
			logoutButton.SetSelectedFunc(func() {
				// токен удаляется, интерфейс пересобирается целиком -
				// аналог полной перезагрузки страницы
				tokens.Clear()
				tapp.Reload()
			})

			buttons.AddItem(editButton, 17, 1, false)
			buttons.AddItem(logoutButton, 11, 1, false)
			actionButtons = append(actionButtons, editButton, logoutButton)
		} else {
			loginButton := tview.NewButton("Войти")
			loginButton.SetSelectedFunc(func() { tapp.SwitchTo(tui.Login) })
			buttons.AddItem(loginButton, 11, 1, false)
			actionButtons = append(actionButtons, loginButton)
		}

		exitButton := tview.NewButton("Выход")
		exitButton.SetSelectedFunc(func() { tapp.Stop() })
		buttons.AddItem(exitButton, 11, 1, false)
		actionButtons = append(actionButtons, exitButton)

		// Главная и модальная галереи читают один список работ: подписка
		// гарантирует перерисовку после каждого изменения списка
		stor.Subscribe(func() { renderGallery() })

		// Начальная загрузка: работы и категории должны быть получены
		// целиком до первой отрисовки галереи и панели фильтров
		if err := handlers.LoadPortfolio(ctx, worksURL, categoriesURL, client, stor); err != nil {
			logger.ClientLog.Error("initial portfolio load error", zap.String("error", error.Error(err)))
			renderFilters()
			renderMessage(gallery, httpmsg.FromError(err))
		} else {
			renderFilters()
			renderGallery()
		}

		flex := tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(header, 1, 1, false).
			AddItem(filterRow, 1, 1, false).
			AddItem(gallery, 0, 1, true).
			AddItem(buttons, 3, 1, false)

		// Переключение фокуса с помощью Tab
		flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyTab { // Циклический переход фокуса между элементами
				// Список элементов собирается при каждом нажатии: панель
				// фильтров перестраивается после обновления данных
				focusables := []tview.Primitive{gallery}
				for _, b := range filterButtons {
					focusables = append(focusables, b)
				}
				for _, b := range actionButtons {
					focusables = append(focusables, b)
				}

				next := 0
				for i, p := range focusables {
					if p == tapp.App.GetFocus() {
						next = (i + 1) % len(focusables)
						break
					}
				}
				tapp.App.SetFocus(focusables[next])
			}
			return event
		})

		return flex
	}
}

// renderWorks - перерисовывает таблицу галереи по переданному списку работ.
// Порядок строк повторяет порядок работ в списке.
func renderWorks(table *tview.Table, works []portfolio.Work) {
	if table == nil {
		// поверхность отсутствует - перерисовка не требуется
		return
	}
	table.Clear()

	table.SetCell(0, 0, tview.NewTableCell("Название").SetAlign(tview.AlignCenter).SetTextColor(tcell.ColorYellow).SetSelectable(false))
	table.SetCell(0, 1, tview.NewTableCell("Категория").SetAlign(tview.AlignCenter).SetTextColor(tcell.ColorYellow).SetSelectable(false))
	table.SetCell(0, 2, tview.NewTableCell("Изображение").SetAlign(tview.AlignCenter).SetTextColor(tcell.ColorYellow).SetSelectable(false))

	for i, w := range works {
		table.SetCell(i+1, 0, tview.NewTableCell(w.Title))
		table.SetCell(i+1, 1, tview.NewTableCell(w.Category.Name))
		table.SetCell(i+1, 2, tview.NewTableCell(w.ImageURL))
	}
}

// renderMessage - показывает сообщение вместо содержимого галереи.
func renderMessage(table *tview.Table, message string) {
	if table == nil {
		return
	}
	table.Clear()
	table.SetCell(0, 0, tview.NewTableCell(message).SetTextColor(tcell.ColorRed))
}
