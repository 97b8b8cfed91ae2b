package home

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abezemskiy/portfolio/internal/client/identity"
	"github.com/abezemskiy/portfolio/internal/client/storage/inmemory"
	"github.com/abezemskiy/portfolio/internal/client/tui/app"
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/gdamore/tcell/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorks() ([]portfolio.Work, []portfolio.Category) {
	categories := []portfolio.Category{
		{ID: 1, Name: "Объекты"},
		{ID: 2, Name: "Аппартаменты"},
	}
	works := []portfolio.Work{
		{ID: 1, Title: "Абажур", ImageURL: "http://images/1.png", CategoryID: 1, Category: categories[0]},
		{ID: 2, Title: "Аппартаменты у моря", ImageURL: "http://images/2.png", CategoryID: 2, Category: categories[1]},
	}
	return works, categories
}

// newTestServer - вспомогательная функция для запуска сервера портфолио.
func newTestServer(t *testing.T, works []portfolio.Work, categories []portfolio.Category) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/api/works", func(res http.ResponseWriter, req *http.Request) {
		res.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(res).Encode(works)
		require.NoError(t, err)
	})
	r.Get("/api/categories", func(res http.ResponseWriter, req *http.Request) {
		res.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(res).Encode(categories)
		require.NoError(t, err)
	})
	return httptest.NewServer(r)
}

func TestRenderWorks(t *testing.T) {
	works, _ := testWorks()

	table := tview.NewTable()
	renderWorks(table, works)

	// Строка заголовка плюс строка на каждую работу
	require.Equal(t, len(works)+1, table.GetRowCount())

	// Порядок строк повторяет порядок работ в списке
	assert.Equal(t, "Абажур", table.GetCell(1, 0).Text)
	assert.Equal(t, "Аппартаменты у моря", table.GetCell(2, 0).Text)
	assert.Equal(t, "Аппартаменты", table.GetCell(2, 1).Text)
	assert.Equal(t, "http://images/2.png", table.GetCell(2, 2).Text)

	// Повторная перерисовка заменяет содержимое целиком
	renderWorks(table, works[:1])
	assert.Equal(t, 2, table.GetRowCount())

	// Отсутствующая поверхность не приводит к панике
	renderWorks(nil, works)
	renderMessage(nil, "some message")
}

func TestRenderMessage(t *testing.T) {
	table := tview.NewTable()
	works, _ := testWorks()
	renderWorks(table, works)

	renderMessage(table, "Не удалось загрузить работы")
	require.Equal(t, 1, table.GetRowCount())
	assert.Equal(t, "Не удалось загрузить работы", table.GetCell(0, 0).Text)
}

func TestPage(t *testing.T) {
	works, categories := testWorks()
	srv := newTestServer(t, works, categories)
	defer srv.Close()

	stor := inmemory.NewWorksStorage()
	tokens := &identity.TokenStorage{}
	testApp := app.NewApp(func() []app.Primitives { return nil })

	page := Page(context.Background(), srv.URL+"/api/works", srv.URL+"/api/categories",
		resty.New(), stor, tokens, false, nil)(testApp)

	flex, ok := page.(*tview.Flex)
	require.True(t, ok, "Page must return *tview.Flex")

	// Начальная загрузка заполнила хранилище до первой отрисовки
	assert.Equal(t, len(works), len(stor.GetWorks()))
	assert.Equal(t, len(categories), len(stor.GetCategories()))

	// Панель фильтров: кнопка "Все" плюс кнопка на каждую категорию
	filterRow, ok := flex.GetItem(1).(*tview.Flex)
	require.True(t, ok)
	assert.Equal(t, len(categories)+1, filterRow.GetItemCount())

	// Галерея отрисована по полному списку работ
	gallery, ok := flex.GetItem(2).(*tview.Table)
	require.True(t, ok)
	assert.Equal(t, len(works)+1, gallery.GetRowCount())

	// Добавление работы в общий список синхронно перерисовывает галерею
	stor.AddWork(portfolio.Work{ID: 3, Title: "Терраса", CategoryID: 1, Category: categories[0]})
	assert.Equal(t, len(works)+2, gallery.GetRowCount())
}

func TestPageAdmin(t *testing.T) {
	works, categories := testWorks()
	srv := newTestServer(t, works, categories)
	defer srv.Close()

	stor := inmemory.NewWorksStorage()
	tokens := &identity.TokenStorage{}
	tokens.Set("some token")
	testApp := app.NewApp(func() []app.Primitives { return nil })

	page := Page(context.Background(), srv.URL+"/api/works", srv.URL+"/api/categories",
		resty.New(), stor, tokens, true, nil)(testApp)

	flex, ok := page.(*tview.Flex)
	require.True(t, ok, "Page must return *tview.Flex")

	// Заголовок содержит баннер режима редактирования
	header, ok := flex.GetItem(0).(*tview.TextView)
	require.True(t, ok)
	assert.Contains(t, header.GetText(true), "режим редактирования")

	// В режиме редактирования панель фильтров скрыта
	filterRow, ok := flex.GetItem(1).(*tview.Flex)
	require.True(t, ok)
	assert.Equal(t, 0, filterRow.GetItemCount())

	// Галерея отрисована по полному списку работ
	gallery, ok := flex.GetItem(2).(*tview.Table)
	require.True(t, ok)
	assert.Equal(t, len(works)+1, gallery.GetRowCount())
}

// focusedLabels - вспомогательная функция: прогоняет цикл фокуса по странице
// и собирает подписи всех кнопок, до которых можно дойти клавишей Tab.
func focusedLabels(t *testing.T, testApp *app.App, flex *tview.Flex, presses int) (labels map[string]bool, galleryFocused bool) {
	t.Helper()

	capture := flex.GetInputCapture()
	require.NotNil(t, capture)

	labels = map[string]bool{}
	for i := 0; i < presses; i++ {
		capture(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))

		switch focused := testApp.App.GetFocus().(type) {
		case *tview.Button:
			labels[focused.GetLabel()] = true
		case *tview.Table:
			galleryFocused = true
		}
	}
	return labels, galleryFocused
}

func TestFocusCycle(t *testing.T) {
	works, categories := testWorks()
	srv := newTestServer(t, works, categories)
	defer srv.Close()

	stor := inmemory.NewWorksStorage()
	tokens := &identity.TokenStorage{}
	testApp := app.NewApp(func() []app.Primitives { return nil })

	page := Page(context.Background(), srv.URL+"/api/works", srv.URL+"/api/categories",
		resty.New(), stor, tokens, false, nil)(testApp)
	flex := page.(*tview.Flex)

	// Галерея, панель фильтров и все кнопки действий достижимы циклом Tab
	labels, galleryFocused := focusedLabels(t, testApp, flex, 20)
	assert.True(t, galleryFocused, "gallery must be reachable via Tab cycle")
	assert.True(t, labels["Все"], "filter 'Все' must be reachable via Tab cycle")
	assert.True(t, labels["Объекты"])
	assert.True(t, labels["Аппартаменты"])
	assert.True(t, labels["Обновить"])
	assert.True(t, labels["Войти"], "login button must be reachable via Tab cycle")
	assert.True(t, labels["Выход"])
}

func TestFocusCycleAdmin(t *testing.T) {
	works, categories := testWorks()
	srv := newTestServer(t, works, categories)
	defer srv.Close()

	stor := inmemory.NewWorksStorage()
	tokens := &identity.TokenStorage{}
	tokens.Set("some token")
	testApp := app.NewApp(func() []app.Primitives { return nil })

	page := Page(context.Background(), srv.URL+"/api/works", srv.URL+"/api/categories",
		resty.New(), stor, tokens, true, nil)(testApp)
	flex := page.(*tview.Flex)

	// Кнопки режима редактирования достижимы циклом Tab, фильтров нет
	labels, galleryFocused := focusedLabels(t, testApp, flex, 20)
	assert.True(t, galleryFocused, "gallery must be reachable via Tab cycle")
	assert.True(t, labels["Обновить"])
	assert.True(t, labels["Редактировать"], "edit button must be reachable via Tab cycle")
	assert.True(t, labels["Выйти"], "logout button must be reachable via Tab cycle")
	assert.True(t, labels["Выход"])
	assert.False(t, labels["Все"], "filter buttons are hidden in edit mode")
}

func TestRefreshError(t *testing.T) {
	works, categories := testWorks()
	srv := newTestServer(t, works, categories)

	stor := inmemory.NewWorksStorage()
	tokens := &identity.TokenStorage{}
	testApp := app.NewApp(func() []app.Primitives { return nil })

	page := Page(context.Background(), srv.URL+"/api/works", srv.URL+"/api/categories",
		resty.New(), stor, tokens, false, nil)(testApp)
	flex := page.(*tview.Flex)

	gallery := flex.GetItem(2).(*tview.Table)
	require.Equal(t, len(works)+1, gallery.GetRowCount())

	// Сервер становится недоступен
	srv.Close()

	// Нажимаю кнопку обновления
	buttons := flex.GetItem(3).(*tview.Flex)
	refreshButton := buttons.GetItem(0).(*tview.Button)
	refreshButton.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(p tview.Primitive) {})

	// Прежний список продолжает показываться, ошибка показана во
	// всплывающем окне
	assert.Equal(t, len(works), len(stor.GetWorks()))
	assert.Equal(t, len(works)+1, gallery.GetRowCount())
	assert.True(t, testApp.Pages.HasPage("error"), "refresh failure must be shown via popup")
}

func TestPageLoadError(t *testing.T) {
	stor := inmemory.NewWorksStorage()
	tokens := &identity.TokenStorage{}
	testApp := app.NewApp(func() []app.Primitives { return nil })

	// Сервер недоступен
	wrongAddress := "http://wrong.address.com"
	page := Page(context.Background(), wrongAddress+"/api/works", wrongAddress+"/api/categories",
		resty.New(), stor, tokens, false, nil)(testApp)

	flex, ok := page.(*tview.Flex)
	require.True(t, ok, "Page must return *tview.Flex")

	// Хранилище осталось пустым, в галерее показано сообщение об ошибке
	assert.Empty(t, stor.GetWorks())

	gallery, ok := flex.GetItem(2).(*tview.Table)
	require.True(t, ok)
	require.Equal(t, 1, gallery.GetRowCount())
	assert.NotEmpty(t, gallery.GetCell(0, 0).Text)
}
