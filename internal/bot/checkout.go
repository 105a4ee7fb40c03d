package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dunya/jewellery-bot/internal/dialog"
	"github.com/dunya/jewellery-bot/internal/domain/orders"
	"github.com/dunya/jewellery-bot/internal/infra/metrics"
)

func (b *Bot) startCheckout(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID

	reply, started := b.checkout.Start(userID)
	if !started {
		b.answerCallback(cb, reply)
		return
	}
	b.sendMarkdown(userID, reply)
	b.answerCallback(cb, "")
}

// finishCheckout — единственное место, где заказ уходит оператору.
// Порядок фиксированный: рендер → отправка → очистка корзины →
// уничтожение сессии. Если основное уведомление не дошло, корзина и
// сессия остаются нетронутыми и пользователь может повторить ответ.
func (b *Bot) finishCheckout(msg *tgbotapi.Message, form dialog.Form) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	buyer := orders.Buyer{
		UserID:   userID,
		FullName: strings.TrimSpace(strings.TrimSpace(msg.From.FirstName) + " " + strings.TrimSpace(msg.From.LastName)),
		Username: msg.From.UserName,
	}
	order := orders.New(orders.Customer{
		Name:    form.Name,
		Phone:   form.Phone,
		Address: form.Address,
		Comment: form.Comment,
	}, buyer, b.carts.Lines(userID), b.catalog)

	notify := tgbotapi.NewMessage(b.adminChat, orders.Format(order, b.catalog))
	notify.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(notify); err != nil {
		metrics.SendErrorsTotal.Inc()
		b.log.Error("order notification failed", "user_id", userID, "err", err)
		b.send(tgbotapi.NewMessage(chatID,
			"Не получилось отправить заказ. Отправьте комментарий ещё раз чуть позже."))
		return
	}
	metrics.OrdersTotal.Inc()

	// Визитка с телефоном — удобство для оператора, не часть заказа.
	// Её ошибка заказ не отменяет.
	contact := tgbotapi.NewContact(b.adminChat, form.Phone, form.Name)
	if _, err := b.api.Send(contact); err != nil {
		b.log.Warn("contact card failed", "user_id", userID, "err", err)
	}

	b.carts.Clear(userID)
	b.checkout.Finish(userID)

	done := tgbotapi.NewMessage(chatID, "✅ Заказ принят! Данные получены.")
	done.ReplyMarkup = mainMenuKeyboard()
	b.send(done)
}
