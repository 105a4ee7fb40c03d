package orders

import "github.com/dunya/jewellery-bot/internal/domain/cart"

// Customer — данные, собранные в диалоге оформления.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Comment string
}

// Buyer — telegram-профиль покупателя, каким его видит бот.
type Buyer struct {
	UserID   int64
	FullName string
	Username string
}

// Order — снимок заказа в момент отправки оператору. Нигде не хранится:
// собирается, рендерится, уходит в операторский чат и забывается.
type Order struct {
	Customer Customer
	Buyer    Buyer
	Lines    []cart.Line
	Total    int64
}

// New собирает снимок заказа из собранных полей и текущей корзины.
func New(c Customer, b Buyer, lines []cart.Line, p cart.Pricer) Order {
	return Order{
		Customer: c,
		Buyer:    b,
		Lines:    lines,
		Total:    cart.Total(lines, p),
	}
}
