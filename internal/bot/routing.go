package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		m := tgbotapi.NewMessage(chatID, "Добро пожаловать в *Dunya Jewellery* 🩶\nВыберите действие:")
		m.ParseMode = tgbotapi.ModeMarkdown
		m.ReplyMarkup = mainMenuKeyboard()
		b.send(m)

	case "help":
		b.send(tgbotapi.NewMessage(chatID,
			"Команды:\n/start — главное меню\n/cancel — отменить оформление\n/help — помощь"))

	case "cancel":
		if b.checkout.Cancel(msg.From.ID) {
			m := tgbotapi.NewMessage(chatID, "Оформление отменено. Корзина сохранена.")
			m.ReplyMarkup = mainMenuKeyboard()
			b.send(m)
			return
		}
		b.send(tgbotapi.NewMessage(chatID, "Сейчас ничего не оформляется."))

	case "export":
		// Прайс-лист каталога, только для операторского чата
		if msg.From.ID != b.adminChat {
			b.send(tgbotapi.NewMessage(chatID, "Доступ запрещён."))
			return
		}
		if err := b.sendPriceList(chatID); err != nil {
			b.log.Error("price list export failed", "err", err)
			b.send(tgbotapi.NewMessage(chatID, "Не удалось сформировать прайс-лист."))
		}

	default:
		b.send(tgbotapi.NewMessage(chatID, "Не знаю такую команду. Наберите /help"))
	}
}

func (b *Bot) handleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	// Активное оформление перехватывает весь свободный текст, включая
	// подписи кнопок меню.
	if b.checkout.Active(userID) {
		res, ok := b.checkout.Input(userID, msg.Text)
		if !ok {
			return
		}
		if res.Done {
			b.finishCheckout(msg, res.Form)
			return
		}
		b.sendMarkdown(chatID, res.Reply)
		return
	}

	switch msg.Text {
	case LabelCatalog:
		b.showCatalog(chatID)
	case LabelCart:
		b.showCart(chatID, userID)
	case LabelContact:
		b.showContact(chatID)
	}
}
