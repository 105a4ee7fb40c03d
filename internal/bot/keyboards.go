package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dunya/jewellery-bot/internal/domain/cart"
	"github.com/dunya/jewellery-bot/internal/domain/catalog"
	"github.com/dunya/jewellery-bot/internal/domain/sizes"
)

// Подписи нижнего меню. По ним же машина оформления отличает случайный
// тап по кнопке от осмысленного ответа.
const (
	LabelCatalog = "🛍 Каталог"
	LabelCart    = "🧺 Корзина"
	LabelContact = "💬 Связаться"
)

func MenuLabels() []string {
	return []string{LabelCatalog, LabelCart, LabelContact}
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(LabelCatalog), tgbotapi.NewKeyboardButton(LabelCart)},
			{tgbotapi.NewKeyboardButton(LabelContact)},
		},
	}
}

func catalogKeyboard(products []catalog.Product) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for _, p := range products {
		label := fmt.Sprintf("%s — %s сум", p.Name, cart.FormatPrice(p.Price))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "p:"+p.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productKeyboard(productID string) tgbotapi.InlineKeyboardMarkup {
	sizeRow := []tgbotapi.InlineKeyboardButton{}
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for _, s := range sizes.Allowed {
		sizeRow = append(sizeRow, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("Размер %d", s),
			fmt.Sprintf("s:%s:%d", productID, s),
		))
		if len(sizeRow) == 3 {
			rows = append(rows, sizeRow)
			sizeRow = []tgbotapi.InlineKeyboardButton{}
		}
	}
	if len(sizeRow) > 0 {
		rows = append(rows, sizeRow)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🧺 В корзину", "add:"+productID),
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "back:catalog"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// cartKeyboard строит кнопки ➕/➖/🗑 по текущему порядку позиций.
// После любого изменения корзина перерисовывается, чтобы индексы кнопок
// совпадали с последним рендером.
func cartKeyboard(lines []cart.Line) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for i := range lines {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("➕ %d", i+1), fmt.Sprintf("inc:%d", i)),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("➖ %d", i+1), fmt.Sprintf("dec:%d", i)),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🗑 %d", i+1), fmt.Sprintf("del:%d", i)),
		))
	}
	if len(lines) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Оформить заказ", "checkout:start"),
			tgbotapi.NewInlineKeyboardButtonData("🧹 Очистить", "cart:clear"),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
