package domain

// Category - тематический кластер туристических объектов
type Category string

const (
	CategoryHistorical Category = "historical"
	CategoryParks      Category = "parks"
	CategoryShopping   Category = "shopping"
	CategoryCulture    Category = "culture"
	CategoryNature     Category = "nature"
	CategoryGastro     Category = "gastro"
	CategoryHotels     Category = "hotels"

	// CategoryUnknown - нераспознанная категория, в статистику по кластерам не попадает
	CategoryUnknown Category = "unknown"
)

// Categories - закрытый перечень кластеров в объявленном порядке
var Categories = [...]Category{
	CategoryHistorical,
	CategoryParks,
	CategoryShopping,
	CategoryCulture,
	CategoryNature,
	CategoryGastro,
	CategoryHotels,
}

// ClusterDefinition - статические метаданные кластера
type ClusterDefinition struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
	Icon  string   `json:"icon"`
}
