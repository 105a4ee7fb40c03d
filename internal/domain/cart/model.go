package cart

// Line — позиция корзины: товар в конкретном размере.
// Пара (ProductID, Size) в пределах одной корзины уникальна.
type Line struct {
	ProductID string
	Size      int
	Qty       int
}
