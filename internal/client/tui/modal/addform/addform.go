// Пакет addform реализует форму добавления работы в портфолио.
package addform

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// регистрация декодеров для чтения заголовков изображений
	_ "image/jpeg"
	_ "image/png"

	"github.com/abezemskiy/portfolio/internal/client/handlers"
	"github.com/abezemskiy/portfolio/internal/client/httpmsg"
	"github.com/abezemskiy/portfolio/internal/client/logger"
	"github.com/abezemskiy/portfolio/internal/client/storage"
	"github.com/abezemskiy/portfolio/internal/client/tui/app"
	"github.com/abezemskiy/portfolio/internal/client/tui/tools/printer"
	"github.com/abezemskiy/portfolio/internal/common/tools/checker"
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// maxFileSize - максимально допустимый размер файла изображения в байтах.
const maxFileSize = 4 * 1024 * 1024

// draft - черновик формы добавления работы. Черновик живет столько же,
// сколько сама форма, и уничтожается вместе с ней при возврате в галерею.
type draft struct {
	title      string
	categoryID int // ноль означает, что категория не выбрана
	path       string
	fileOK     bool // файл выбран и прошел проверку
}

// valid - отправка возможна только при заполненных названии, категории и
// прошедшем проверку файле.
func (d *draft) valid() bool {
	return d.fileOK && strings.TrimSpace(d.title) != "" && d.categoryID != 0
}

// checkFile - проверяет выбранный файл изображения. Тип определяется по
// расширению без чтения содержимого, размер не должен превышать 4 МБ.
// Возвращает размер файла в байтах.
func checkFile(path string) (int64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return 0, &checker.ValidationError{Message: "Файл должен быть в формате JPG или PNG"}
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, &checker.ValidationError{Message: "Файл не найден"}
	}
	if info.Size() > maxFileSize {
		return 0, &checker.ValidationError{Message: "Файл слишком большой (максимум 4 МБ)"}
	}
	return info.Size(), nil
}

// New - строит форму добавления работы. Функция onDone вызывается при
// успешной отправке и при возврате назад: контроллер уничтожает форму
// вместе с черновиком и возвращает модальное окно в состояние галереи.
func New(ctx context.Context, url string, client *resty.Client, stor storage.IWorksStorage,
	tapp *app.App, onDone func()) tview.Primitive {

	form := tview.NewForm()
	d := &draft{}

	// Область ошибок валидации и отправки
	errorField := tview.NewTextView()
	errorField.SetTextColor(tcell.ColorRed)

	// Текстовое превью выбранного изображения
	preview := tview.NewTextView()
	preview.SetTextColor(tcell.ColorGreen)

	// Список категорий читается из общего хранилища: форма строится после
	// начальной загрузки и видит те же категории, что и панель фильтров
	categories := stor.GetCategories()
	options := make([]string, 0, len(categories)+1)
	options = append(options, "Выберите категорию")
	for _, cat := range categories {
		options = append(options, cat.Name)
	}

	// refresh - выключает кнопку отправки, пока черновик не заполнен
	refresh := func() {
		if form.GetButtonCount() == 0 {
			// кнопки еще не добавлены
			return
		}
		form.GetButton(0).SetDisabled(!d.valid())
	}

	form.AddInputField("Название", "", 30, nil, func(text string) {
		d.title = text
		refresh()
	})
	form.AddDropDown("Категория", options, 0, func(option string, index int) {
		if index > 0 {
			d.categoryID = categories[index-1].ID
		} else {
			d.categoryID = 0
		}
		refresh()
	})
	form.AddInputField("Путь к файлу (jpg или png, максимум 4 МБ)", "", 40, nil, func(text string) {
		d.path = text
		d.fileOK = false
		preview.SetText("")
		errorField.SetText("")

		if text != "" {
			size, err := checkFile(text)
			if err != nil {
				// отклоненный файл сбрасывается, ошибка показывается под формой
				errorField.SetText(err.Error())
			} else {
				d.fileOK = true
				showPreview(tapp, preview, text, size)
			}
		}
		refresh()
	})

	form.AddButton("Добавить", func() {
		if !d.valid() {
			// кнопка выключена, но защищаюсь от прямого вызова обработчика
			return
		}

		newWork := &portfolio.NewWork{
			Title:      strings.TrimSpace(d.title),
			CategoryID: d.categoryID,
			ImagePath:  d.path,
		}

		// Создаю работу на сервере
		work, err := handlers.CreateWork(ctx, url, newWork, client)
		if err != nil {
			logger.ClientLog.Error("create work error", zap.String("error", error.Error(err)))
			errorField.SetText(httpmsg.FromError(err))
			return
		}

		// Добавляю работу в общий список: подписчики синхронно перерисуют
		// главную и модальную галереи
		stor.AddWork(*work)

		printer.Message(tapp, "работа успешно добавлена")
		onDone()
	})
	form.AddButton("Назад", func() { onDone() })

	// кнопка отправки выключена, пока черновик пуст
	refresh()

	form.SetBorder(true)
	form.SetTitle("Добавление фото")
	form.SetTitleAlign(tview.AlignCenter)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 13, 1, true).
		AddItem(preview, 1, 1, false).
		AddItem(errorField, 1, 1, false)
}

// showPreview - асинхронно строит текстовое превью изображения. Формат и
// размеры читаются из заголовка файла в отдельной горутине, форма в это
// время остается отзывчивой.
func showPreview(tapp *app.App, preview *tview.TextView, path string, size int64) {
	go func() {
		f, err := os.Open(path)
		if err != nil {
			logger.ClientLog.Debug("open image error", zap.String("error", error.Error(err)))
			return
		}
		defer f.Close()

		cfg, format, err := image.DecodeConfig(f)
		if err != nil {
			logger.ClientLog.Debug("decode image config error", zap.String("error", error.Error(err)))
			return
		}

		tapp.App.QueueUpdateDraw(func() {
			preview.SetText(fmt.Sprintf("Превью: %s %dx%d, %d КБ",
				strings.ToUpper(format), cfg.Width, cfg.Height, size/1024))
		})
	}()
}
