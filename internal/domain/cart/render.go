package cart

import (
	"fmt"
	"strings"
)

// Pricer отдаёт имя и цену товара; корзине достаточно этого среза каталога.
type Pricer interface {
	NamePrice(productID string) (name string, price int64, ok bool)
}

const EmptyText = "Корзина пустая."

// Total — сумма по позициям. Неизвестные товары (в закрытом каталоге их
// быть не должно) в сумму не попадают.
func Total(lines []Line, p Pricer) int64 {
	var total int64
	for _, l := range lines {
		if _, price, ok := p.NamePrice(l.ProductID); ok {
			total += price * int64(l.Qty)
		}
	}
	return total
}

// Render — текст корзины: нумерация с единицы, сумма по позиции, итог.
func Render(lines []Line, p Pricer) string {
	if len(lines) == 0 {
		return EmptyText
	}

	var sb strings.Builder
	sb.WriteString("🧺 *Ваша корзина:*\n")
	var total int64
	for i, l := range lines {
		name, price, ok := p.NamePrice(l.ProductID)
		if !ok {
			continue
		}
		sum := price * int64(l.Qty)
		total += sum
		fmt.Fprintf(&sb, "%d) %s\n   Размер: %d | Кол-во: %d | %s сум\n",
			i+1, name, l.Size, l.Qty, FormatPrice(sum))
	}
	fmt.Fprintf(&sb, "\n*Итого:* %s сум", FormatPrice(total))
	return sb.String()
}

// FormatPrice разделяет тысячи пробелами: 1234567 → "1 234 567".
func FormatPrice(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out
}
