package app

import (
	"github.com/rivo/tview"
)

// App представляет TUI-приложение.
type App struct {
	App   *tview.Application
	Pages *tview.Pages

	build func() []Primitives // функция сборки страниц приложения
	names []string            // имена текущих страниц
}

// Primitives - структуры для хранения и передачи экранов.
type Primitives struct {
	Name string
	Prim func(*App) tview.Primitive
}

// NewApp создаёт новое TUI-приложение. Страницы строятся переданной функцией
// сборки, чтобы их можно было пересобрать заново при изменении состояния сессии.
func NewApp(build func() []Primitives) *App {
	tuiApp := &App{
		App:   tview.NewApplication(),
		Pages: tview.NewPages(),
		build: build,
	}

	tuiApp.addPages()
	tuiApp.App.SetRoot(tuiApp.Pages, true)

	return tuiApp
}

// addPages - строит и добавляет экраны, первый экран становится видимым.
func (a *App) addPages() {
	for _, p := range a.build() {
		a.Pages.AddPage(p.Name, p.Prim(a), true, true)
		a.names = append(a.names, p.Name)
	}
	if len(a.names) > 0 {
		a.Pages.SwitchToPage(a.names[0])
	}
}

// Reload - полная пересборка страниц приложения. Аналог перезагрузки страницы
// в браузере: все экраны и их обработчики создаются заново с актуальным
// состоянием сессии, прежние экраны уничтожаются.
func (a *App) Reload() {
	for _, name := range a.names {
		a.Pages.RemovePage(name)
	}
	a.names = nil
	a.addPages()
}

// Run запускает приложение.
func (a *App) Run() error {
	return a.App.Run()
}

// SwitchTo переключает экран.
func (a *App) SwitchTo(page string) {
	a.Pages.SwitchToPage(page)
}

// Stop останавливает приложение.
func (a *App) Stop() {
	a.App.Stop()
}
