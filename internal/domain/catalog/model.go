package catalog

// Product — позиция каталога. Цена в сумах, без копеек.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"desc"`
	PhotoURL    string `json:"photo_url"`
}
