package dialog

// Step — шаг оформления заказа. Порядок строго линейный:
// имя → телефон → адрес → комментарий.
type Step string

const (
	StepName    Step = "name"
	StepPhone   Step = "phone"
	StepAddress Step = "address"
	StepComment Step = "comment"
)

// Session — активное оформление одного пользователя. На пользователя
// существует не больше одной сессии; живёт до отправки заказа или отмены.
type Session struct {
	Step    Step
	Name    string
	Phone   string
	Address string
	Comment string
}

// Form — собранные поля заказа, снимок сессии после последнего шага.
type Form struct {
	Name    string
	Phone   string
	Address string
	Comment string
}
