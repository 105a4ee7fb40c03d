package dialog

import "strings"

// Тексты шагов. Result.Reply отдаётся в Telegram как Markdown.
const (
	PromptName    = "Введите *имя*:"
	PromptPhone   = "Введите *телефон* (например +998901234567):"
	PromptAddress = "Введите *адрес доставки*:"
	PromptComment = "Комментарий (если нет — напишите `-`):"

	replyEmptyCart  = "Корзина пустая."
	replyEmptyInput = "Пусто. Введите значение ещё раз."
	replyBadPhone   = "Телефон не распознан. Пример: +998901234567. Введите ещё раз:"
	replyBusy       = "Сейчас идёт оформление заказа. "
)

// CartView — всё, что оформлению нужно знать о корзине: пустая она или нет.
type CartView interface {
	Len(userID int64) int
}

// Result — ответ машины на один ввод. Done выставляется после последнего
// шага; сессию при этом уничтожает вызывающая сторона вместе с очисткой
// корзины, когда заказ подтверждён оператором.
type Result struct {
	Reply string
	Done  bool
	Form  Form
}

// Service — последовательный диалог оформления. Любая ошибка ввода
// разрешается повторным вопросом на месте, наверх ошибки не уходят.
type Service struct {
	sessions   *Repo
	carts      CartView
	menuLabels []string
}

func NewService(sessions *Repo, carts CartView, menuLabels []string) *Service {
	return &Service{sessions: sessions, carts: carts, menuLabels: menuLabels}
}

// Start начинает оформление. С пустой корзиной сессия не создаётся.
// Память выбранных размеров не трогается.
func (s *Service) Start(userID int64) (reply string, started bool) {
	if s.carts.Len(userID) == 0 {
		return replyEmptyCart, false
	}
	s.sessions.Set(userID, &Session{Step: StepName})
	return PromptName, true
}

// Active — идёт ли у пользователя оформление: тогда свободный текст
// направляется сюда, а не в меню.
func (s *Service) Active(userID int64) bool {
	_, ok := s.sessions.Get(userID)
	return ok
}

// Cancel уничтожает сессию на любом шаге. Корзина и память размеров
// остаются как были. Возвращает false, если оформление не шло.
func (s *Service) Cancel(userID int64) bool {
	if _, ok := s.sessions.Get(userID); !ok {
		return false
	}
	s.sessions.Delete(userID)
	return true
}

// Finish уничтожает сессию после успешной отправки заказа.
func (s *Service) Finish(userID int64) {
	s.sessions.Delete(userID)
}

// Input обрабатывает один текстовый ответ пользователя. ok=false, когда
// активной сессии нет и текст надо трактовать как обычное сообщение.
func (s *Service) Input(userID int64, text string) (Result, bool) {
	sess, active := s.sessions.Get(userID)
	if !active {
		return Result{}, false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Reply: replyEmptyInput}, true
	}

	// Случайный тап по кнопке меню во время оформления: не отменяем
	// и не подставляем подпись кнопки в поле, а повторяем вопрос.
	for _, label := range s.menuLabels {
		if text == label {
			return Result{Reply: replyBusy + s.prompt(sess.Step)}, true
		}
	}

	switch sess.Step {
	case StepName:
		sess.Name = text
		sess.Step = StepPhone
		return Result{Reply: PromptPhone}, true

	case StepPhone:
		phone := NormalizePhone(text)
		if !ValidPhone(phone) {
			return Result{Reply: replyBadPhone}, true
		}
		sess.Phone = phone
		sess.Step = StepAddress
		return Result{Reply: PromptAddress}, true

	case StepAddress:
		sess.Address = text
		sess.Step = StepComment
		return Result{Reply: PromptComment}, true

	case StepComment:
		sess.Comment = text
		return Result{
			Done: true,
			Form: Form{
				Name:    sess.Name,
				Phone:   sess.Phone,
				Address: sess.Address,
				Comment: sess.Comment,
			},
		}, true
	}

	// Неизвестный шаг в сессии быть не может; сбрасываем на всякий случай.
	s.sessions.Delete(userID)
	return Result{}, false
}

func (s *Service) prompt(step Step) string {
	switch step {
	case StepName:
		return PromptName
	case StepPhone:
		return PromptPhone
	case StepAddress:
		return PromptAddress
	default:
		return PromptComment
	}
}
