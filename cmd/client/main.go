package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/abezemskiy/portfolio/internal/client/identity"
	"github.com/abezemskiy/portfolio/internal/client/identity/auth"
	"github.com/abezemskiy/portfolio/internal/client/logger"
	"github.com/abezemskiy/portfolio/internal/client/storage"
	"github.com/abezemskiy/portfolio/internal/client/storage/inmemory"
	"github.com/abezemskiy/portfolio/internal/client/tui"
	"github.com/abezemskiy/portfolio/internal/client/tui/app"
	"github.com/abezemskiy/portfolio/internal/client/tui/home"
	"github.com/abezemskiy/portfolio/internal/client/tui/ident/authorize"
	"github.com/abezemskiy/portfolio/internal/client/tui/modal"

	"github.com/go-resty/resty/v2"
)

const (
	worksPattern      = "/api/works"       // паттерн api для работ портфолио
	categoriesPattern = "/api/categories"  // паттерн api для категорий работ
	loginPattern      = "/api/users/login" // паттерн api для аутентификации
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// Инициализирую resty клиента
	client := resty.New()

	run(context.Background(), client)
}

// run - собирает зависимости клиента и запускает TUI интерфейс.
func run(ctx context.Context, client *resty.Client) {
	// инициализация логера
	if err := logger.Initialize(logLevel, logFile); err != nil {
		log.Fatalf("Error starting client: %v", err)
	}

	// Инициализирую общее хранилище работ и категорий портфолио
	stor := inmemory.NewWorksStorage()

	// Инициализирую хранилище токена сессии
	tokens := &identity.TokenStorage{}

	// Устанавливаю мидлварь для установки заголовков запроса
	client.OnBeforeRequest(auth.OnBeforeMiddleware(tokens))

	ctx, cancelCtx := context.WithCancel(ctx)
	defer cancelCtx()

	// Создаю TUI интерфейс
	tuiApp := createTUI(ctx, stor, tokens, client)

	// Запускаю интерфейс в отдельной горутине
	done := make(chan error, 1)
	go func() {
		done <- tuiApp.Run()
	}()

	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-done:
		// Пользователь завершил работу из интерфейса
		if err != nil {
			log.Fatalf("tui stopped with error, %v", err)
		}
	case <-quit:
		logger.ClientLog.Info("Shutting down client...")
		tuiApp.Stop()
		<-done
	}

	logger.ClientLog.Info("Shutdown the client gracefully")
}

// createTUI - создает TUI приложение. Функция сборки вызывается заново при
// каждой пересборке интерфейса: набор страниц зависит от того, сохранен ли
// токен сессии на момент сборки.
func createTUI(ctx context.Context, stor storage.IWorksStorage, tokens identity.ITokenStorage, client *resty.Client) *app.App {
	build := func() []app.Primitives {
		// прежние представления уничтожаются вместе со своими подписками
		stor.ResetSubscribers()

		// режим редактирования вычисляется один раз на сборку
		admin := identity.IsAdmin(tokens)

		var modalCtrl *modal.Controller
		if admin {
			modalCtrl = modal.NewController(ctx, netAddr+worksPattern, client, stor)
		}

		// создаю страницы TUI
		prims := []app.Primitives{}
		// Добавляю главную страницу с галереей работ
		prims = append(prims, app.Primitives{
			Name: tui.Home,
			Prim: home.Page(ctx, netAddr+worksPattern, netAddr+categoriesPattern, client, stor, tokens, admin, modalCtrl),
		})

		if admin {
			// Добавляю модальное окно режима редактирования
			prims = append(prims, app.Primitives{
				Name: tui.Modal,
				Prim: modalCtrl.Init,
			})
		} else {
			// Добавляю страницу аутентификации
			prims = append(prims, app.Primitives{
				Name: tui.Login,
				Prim: authorize.Page(ctx, netAddr+loginPattern, client, tokens),
			})
		}

		return prims
	}

	return app.NewApp(build)
}
