// Пакет modal реализует модальное окно режима редактирования.
// Окно находится ровно в одном из трех состояний: галерея с возможностью
// удаления, форма добавления работы или подтверждение удаления. Закрытие
// окна и завершение любого действия всегда возвращают состояние галереи,
// поэтому повторное открытие не может показать устаревшую форму.
package modal

import (
	"context"
	"fmt"

	"github.com/abezemskiy/portfolio/internal/client/handlers"
	"github.com/abezemskiy/portfolio/internal/client/logger"
	"github.com/abezemskiy/portfolio/internal/client/storage"
	"github.com/abezemskiy/portfolio/internal/client/tui"
	"github.com/abezemskiy/portfolio/internal/client/tui/app"
	"github.com/abezemskiy/portfolio/internal/client/tui/modal/addform"
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Имена состояний модального окна.
const (
	galleryState = "modal_gallery" // галерея работ с возможностью удаления
	addFormState = "modal_add"     // форма добавления работы
	confirmState = "modal_confirm" // подтверждение удаления работы
)

// Controller - контроллер модального окна режима редактирования.
// Контроллер создается один раз на сборку интерфейса, владеет своими
// обработчиками и уничтожается вместе со страницами при пересборке.
type Controller struct {
	ctx      context.Context
	worksURL string // адрес коллекции работ: создание и удаление
	client   *resty.Client
	stor     storage.IWorksStorage

	app         *app.App
	pages       *tview.Pages
	gallery     *tview.List
	message     *tview.TextView
	initialized bool
}

// NewController - фабричная функция для создания контроллера модального окна.
func NewController(ctx context.Context, worksURL string, client *resty.Client, stor storage.IWorksStorage) *Controller {
	return &Controller{
		ctx:      ctx,
		worksURL: worksURL,
		client:   client,
		stor:     stor,
	}
}

// Init - строит примитив модального окна. Повторный вызов не регистрирует
// обработчики и подписки заново, а возвращает уже построенное окно.
func (c *Controller) Init(tapp *app.App) tview.Primitive {
	if c.initialized {
		return c.pages
	}
	c.initialized = true
	c.app = tapp

	c.pages = tview.NewPages()

	// Галерея работ: выбор работы открывает подтверждение удаления
	c.gallery = tview.NewList()
	c.gallery.SetSelectedBackgroundColor(tcell.ColorBlue)
	c.gallery.SetBorder(true)
	c.gallery.SetTitle("Галерея фото")

	// Область сообщений: здесь показываются ошибки удаления
	c.message = tview.NewTextView()
	c.message.SetTextColor(tcell.ColorRed)

	// Кнопки
	addButton := tview.NewButton("Добавить фото")
	addButton.SetSelectedFunc(func() { c.showAddForm() })
	closeButton := tview.NewButton("Закрыть")
	closeButton.SetSelectedFunc(func() { c.Close() })

	buttons := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(addButton, 18, 1, false).
		AddItem(closeButton, 12, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(c.gallery, 0, 1, true).
		AddItem(c.message, 1, 1, false).
		AddItem(buttons, 3, 1, false)

	// Переключение фокуса с помощью Tab, Esc закрывает окно
	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab: // Циклический переход фокуса между элементами
			switch c.app.App.GetFocus() {
			case c.gallery:
				c.app.App.SetFocus(addButton)
			case addButton:
				c.app.App.SetFocus(closeButton)
			case closeButton:
				c.app.App.SetFocus(c.gallery)
			}
		case tcell.KeyEsc: // Закрытие модального окна
			c.Close()
		}
		return event
	})

	// Модальная галерея читает тот же список, что и главная: подписка
	// гарантирует перерисовку после каждого изменения
	c.stor.Subscribe(func() { c.renderGallery() })

	c.pages.AddPage(galleryState, flex, true, true)
	c.renderGallery()

	return c.pages
}

// Open - открывает модальное окно. Открытие всегда начинается с состояния
// галереи, перерисованной по текущему списку работ.
func (c *Controller) Open() {
	if c.pages == nil {
		// окно не построено - открывать нечего
		return
	}
	c.reset()
	c.app.SwitchTo(tui.Modal)
}

// Close - закрывает модальное окно с возвратом в состояние галереи.
func (c *Controller) Close() {
	c.reset()
	c.app.SwitchTo(tui.Home)
}

// reset - возвращает модальное окно в состояние галереи: страницы формы и
// подтверждения уничтожаются вместе со своими обработчиками, галерея
// перерисовывается по текущему списку работ.
func (c *Controller) reset() {
	c.pages.RemovePage(addFormState)
	c.pages.RemovePage(confirmState)
	c.message.SetText("")
	c.renderGallery()
	c.pages.SwitchToPage(galleryState)
}

// renderGallery - перерисовывает модальную галерею по текущему списку работ.
func (c *Controller) renderGallery() {
	if c.gallery == nil {
		// поверхность отсутствует - перерисовка не требуется
		return
	}
	c.gallery.Clear()

	works := c.stor.GetWorks()
	if len(works) == 0 {
		c.gallery.AddItem("Работы еще не добавлены", "", 0, nil)
		return
	}
	for _, w := range works {
		work := w
		c.gallery.AddItem(work.Title, "Enter - удалить работу", 0, func() { c.showDeleteConfirm(work) })
	}
}

// showAddForm - переход в состояние формы добавления. Галерея скрывается,
// форма строится заново при каждом входе и уничтожается при возврате,
// поэтому черновик не переживает закрытие формы.
func (c *Controller) showAddForm() {
	c.message.SetText("")
	form := addform.New(c.ctx, c.worksURL, c.client, c.stor, c.app, func() { c.reset() })
	c.pages.AddPage(addFormState, form, true, true)
	c.pages.SwitchToPage(addFormState)
}

// showDeleteConfirm - переход в состояние подтверждения удаления.
// Страница подтверждения добавляется заново при каждом вызове: прежние
// обработчики уничтожаются вместе со старой страницей и не накапливаются.
func (c *Controller) showDeleteConfirm(work portfolio.Work) {
	c.message.SetText("")

	confirm := tview.NewModal().
		SetText(fmt.Sprintf("Удалить работу %q?", work.Title)).
		AddButtons([]string{"Удалить", "Отмена"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel != "Удалить" {
				// Отмена: запрос на сервер не отправляется, список не изменяется
				c.reset()
				return
			}
			c.confirmDelete(work)
		})

	c.pages.AddPage(confirmState, confirm, true, true)
	c.pages.SwitchToPage(confirmState)
}

// confirmDelete - подтвержденное удаление работы. Работа сначала удаляется
// на сервере и только затем из общего списка, поэтому при ошибке сервера
// галереи продолжают показывать работу.
func (c *Controller) confirmDelete(work portfolio.Work) {
	ok, message := handlers.DeleteWork(c.ctx, c.worksURL, work.ID, c.client)
	if !ok {
		// Работа остается в списке, сообщение показывается в области
		// сообщений модального окна
		logger.ClientLog.Error("delete work error", zap.Int("id", work.ID), zap.String("message", message))
		c.reset()
		c.message.SetText(message)
		return
	}

	// Удаляю работу из общего списка: подписчики синхронно перерисуют
	// главную и модальную галереи
	c.stor.DeleteWork(work.ID)
	c.reset()
}
