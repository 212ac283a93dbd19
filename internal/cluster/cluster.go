// Package cluster сопоставляет категории объектов с фиксированным набором
// туристических кластеров.
package cluster

import (
	"fmt"

	"github.com/zhytomyr-tourism/internal/domain"
)

// definitions индексируется позицией категории в domain.Categories
var definitions = [len(domain.Categories)]domain.ClusterDefinition{
	{ID: domain.CategoryHistorical, Name: "Історичні пам'ятки", Color: "#8B4513", Icon: "landmark"},
	{ID: domain.CategoryParks, Name: "Парки та сквери", Color: "#228B22", Icon: "tree"},
	{ID: domain.CategoryShopping, Name: "Торгівля", Color: "#FF6347", Icon: "shopping-bag"},
	{ID: domain.CategoryCulture, Name: "Культурні заклади", Color: "#9370DB", Icon: "theater"},
	{ID: domain.CategoryNature, Name: "Природні об'єкти", Color: "#2E8B57", Icon: "mountain"},
	{ID: domain.CategoryGastro, Name: "Гастрономія", Color: "#FFA500", Icon: "utensils"},
	{ID: domain.CategoryHotels, Name: "Готелі", Color: "#4682B4", Icon: "bed"},
}

var index = make(map[string]int, len(domain.Categories))

func init() {
	for i, c := range domain.Categories {
		if definitions[i].ID != c {
			panic(fmt.Sprintf("cluster: definition %d is %q, want %q", i, definitions[i].ID, c))
		}
		index[string(c)] = i
	}
}

// Classify сопоставляет сырую метку категории с кластером.
// Только точное совпадение, без приведения регистра. Остальное - CategoryUnknown.
func Classify(raw string) domain.Category {
	if i, ok := index[raw]; ok {
		return domain.Categories[i]
	}
	return domain.CategoryUnknown
}

// Index возвращает позицию кластера в объявленном порядке
func Index(c domain.Category) (int, bool) {
	i, ok := index[string(c)]
	return i, ok
}

// Definition возвращает метаданные кластера
func Definition(c domain.Category) (domain.ClusterDefinition, bool) {
	i, ok := Index(c)
	if !ok {
		return domain.ClusterDefinition{}, false
	}
	return definitions[i], true
}

// Definitions возвращает все кластеры в объявленном порядке
func Definitions() []domain.ClusterDefinition {
	result := make([]domain.ClusterDefinition, len(definitions))
	copy(result, definitions[:])
	return result
}
