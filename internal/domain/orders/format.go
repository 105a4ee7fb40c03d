package orders

import (
	"fmt"
	"strings"

	"github.com/dunya/jewellery-bot/internal/domain/cart"
)

// ContactLink — ссылка на покупателя для оператора. При наличии username
// даём https://t.me/..., иначе tg://user?id=... (работает в клиентах Telegram).
func ContactLink(b Buyer) string {
	if b.Username != "" {
		return "https://t.me/" + b.Username
	}
	return fmt.Sprintf("tg://user?id=%d", b.UserID)
}

// Format рендерит уведомление оператору. Чистая функция: состояние
// корзины и сессии здесь не трогаются.
func Format(o Order, p cart.Pricer) string {
	tgName := "-"
	if name := strings.TrimSpace(o.Buyer.FullName); name != "" {
		tgName = name
	}
	username := "(нет)"
	if o.Buyer.Username != "" {
		username = "@" + o.Buyer.Username
	}

	lines := []string{
		"🧾 *Новый заказ Dunya Jewellery*",
		"Покупатель: " + o.Customer.Name,
		"Телефон: " + o.Customer.Phone,
		"Адрес: " + o.Customer.Address,
		"Комментарий: " + o.Customer.Comment,
		"",
		"👤 *Контакт клиента:*",
		"Имя TG: " + tgName,
		fmt.Sprintf("ID: `%d`", o.Buyer.UserID),
		"Username: " + username,
		"Связь: " + ContactLink(o.Buyer),
		"",
		cart.Render(o.Lines, p),
	}
	return strings.Join(lines, "\n")
}
