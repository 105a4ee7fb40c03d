package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dunya/jewellery-bot/internal/domain/cart"
	"github.com/dunya/jewellery-bot/internal/domain/sizes"
)

func (b *Bot) showCatalog(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "🛍 *Каталог колец:*")
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyMarkup = catalogKeyboard(b.catalog.List())
	b.send(m)
}

func (b *Bot) showContact(chatID int64) {
	text := fmt.Sprintf("💬 Напишите сюда: @%s\nКанал: %s", b.managerHandle, b.channelURL)
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) showCart(chatID, userID int64) {
	lines := b.carts.Lines(userID)
	m := tgbotapi.NewMessage(chatID, cart.Render(lines, b.catalog))
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyMarkup = cartKeyboard(lines)
	b.send(m)
}

// refreshCart перерисовывает сообщение корзины на месте, чтобы индексы
// кнопок соответствовали новому порядку позиций.
func (b *Bot) refreshCart(chatID, userID int64, messageID int) {
	lines := b.carts.Lines(userID)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
		cart.Render(lines, b.catalog), cartKeyboard(lines))
	edit.ParseMode = tgbotapi.ModeMarkdown
	b.send(edit)
}

func (b *Bot) openProduct(chatID int64, messageID int, productID string) {
	p, ok := b.catalog.Get(productID)
	if !ok {
		// кнопка от старого каталога — тихо игнорируем
		return
	}

	del := tgbotapi.NewDeleteMessage(chatID, messageID)
	if _, err := b.api.Request(del); err != nil {
		b.log.Error("delete message failed", "err", err)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(p.PhotoURL))
	photo.Caption = fmt.Sprintf("*%s*\n%s\n\nЦена: *%s сум*",
		p.Name, p.Description, cart.FormatPrice(p.Price))
	photo.ParseMode = tgbotapi.ModeMarkdown
	photo.ReplyMarkup = productKeyboard(p.ID)
	b.send(photo)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	messageID := cb.Message.MessageID

	action := parseAction(cb.Data)
	switch action.Kind {
	case ActionBackToCatalog:
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
			"🛍 *Каталог колец:*", catalogKeyboard(b.catalog.List()))
		edit.ParseMode = tgbotapi.ModeMarkdown
		b.send(edit)
		b.answerCallback(cb, "")

	case ActionOpenProduct:
		b.openProduct(chatID, messageID, action.ProductID)
		b.answerCallback(cb, "")

	case ActionPickSize:
		if !validSize(action.Size) {
			b.answerCallback(cb, "")
			return
		}
		if _, ok := b.catalog.Get(action.ProductID); !ok {
			b.answerCallback(cb, "")
			return
		}
		b.sizes.Set(userID, action.ProductID, action.Size)
		b.answerCallback(cb, fmt.Sprintf("Размер выбран: %d", action.Size))

	case ActionAddToCart:
		if _, ok := b.catalog.Get(action.ProductID); !ok {
			b.answerCallback(cb, "")
			return
		}
		size := b.sizes.Get(userID, action.ProductID)
		b.carts.Add(userID, action.ProductID, size)
		b.answerCallback(cb, "Добавлено в корзину ✅")

	case ActionIncLine:
		b.carts.ChangeQty(userID, action.Index, +1)
		b.refreshCart(chatID, userID, messageID)
		b.answerCallback(cb, "")

	case ActionDecLine:
		b.carts.ChangeQty(userID, action.Index, -1)
		b.refreshCart(chatID, userID, messageID)
		b.answerCallback(cb, "")

	case ActionDelLine:
		b.carts.Remove(userID, action.Index)
		b.refreshCart(chatID, userID, messageID)
		b.answerCallback(cb, "")

	case ActionClearCart:
		b.carts.Clear(userID)
		b.refreshCart(chatID, userID, messageID)
		b.answerCallback(cb, "Корзина очищена")

	case ActionStartCheckout:
		b.startCheckout(cb)

	default:
		// битый токен — просто гасим "часики" на кнопке
		b.answerCallback(cb, "")
	}
}

func validSize(s int) bool {
	for _, a := range sizes.Allowed {
		if s == a {
			return true
		}
	}
	return false
}
