package filter

import (
	"testing"

	"github.com/abezemskiy/portfolio/internal/repositories/portfolio"

	"github.com/stretchr/testify/assert"
)

func testWorks() []portfolio.Work {
	objects := portfolio.Category{ID: 1, Name: "Объекты"}
	apartments := portfolio.Category{ID: 2, Name: "Апартаменты"}
	hotels := portfolio.Category{ID: 3, Name: "Отели и рестораны"}

	return []portfolio.Work{
		{ID: 1, Title: "Абажур", Category: objects},
		{ID: 2, Title: "Квартира Париж", Category: apartments},
		{ID: 3, Title: "Ресторан", Category: hotels},
		{ID: 4, Title: "Квартира Лион", Category: apartments},
		{ID: 5, Title: "Светильник", Category: objects},
	}
}

func TestByCategory(t *testing.T) {
	works := testWorks()

	// Возвращается в точности подмножество с совпадающим именем категории,
	// относительный порядок работ сохраняется
	filtered := ByCategory(works, "Апартаменты")
	assert.Equal(t, 2, len(filtered))
	assert.Equal(t, 2, filtered[0].ID)
	assert.Equal(t, 4, filtered[1].ID)

	// Фильтрация идемпотентна: повторное применение того же фильтра
	// возвращает тот же результат
	assert.Equal(t, filtered, ByCategory(filtered, "Апартаменты"))
}

func TestByCategoryExactMatch(t *testing.T) {
	works := testWorks()

	// Совпадение только точное: ни частичное, ни без учета регистра
	assert.Equal(t, 0, len(ByCategory(works, "апартаменты")))
	assert.Equal(t, 0, len(ByCategory(works, "Апарт")))
	assert.Equal(t, 0, len(ByCategory(works, "Несуществующая категория")))
}

func TestByCategoryAll(t *testing.T) {
	works := testWorks()

	// Тождественный фильтр возвращает полный список: те же элементы в том же порядке
	assert.Equal(t, works, ByCategory(works, All))
}

func TestByCategoryEmptyList(t *testing.T) {
	// Пустой список работ фильтруется без ошибок
	assert.Equal(t, 0, len(ByCategory(nil, "Объекты")))
	assert.Equal(t, 0, len(ByCategory([]portfolio.Work{}, All)))
}
