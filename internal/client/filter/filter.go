// Пакет filter выделяет подмножество работ по имени категории.
package filter

import (
	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"
)

// All - имя фильтра, возвращающего полный список работ.
// Это не настоящая категория, а тождественный фильтр.
const All = "Все"

// ByCategory - возвращает работы, категория которых в точности совпадает с
// переданным именем. Порядок работ сохраняется. Для имени All возвращается
// полный список без изменений.
func ByCategory(works []portfolio.Work, category string) []portfolio.Work {
	if category == All {
		return works
	}

	filtered := make([]portfolio.Work, 0, len(works))
	for _, w := range works {
		// точное совпадение имени, без учета регистра не сравниваю
		if w.Category.Name == category {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
