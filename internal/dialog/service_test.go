package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarts map[int64]int

func (f fakeCarts) Len(userID int64) int { return f[userID] }

var menuLabels = []string{"🛍 Каталог", "🧺 Корзина", "💬 Связаться"}

func newTestService(carts fakeCarts) *Service {
	return NewService(NewRepo(), carts, menuLabels)
}

func TestStartRejectsEmptyCart(t *testing.T) {
	s := newTestService(fakeCarts{})

	reply, started := s.Start(1)

	assert.False(t, started)
	assert.Equal(t, "Корзина пустая.", reply)
	assert.False(t, s.Active(1))
}

func TestStartCreatesSession(t *testing.T) {
	s := newTestService(fakeCarts{1: 2})

	reply, started := s.Start(1)

	require.True(t, started)
	assert.Equal(t, PromptName, reply)
	assert.True(t, s.Active(1))
}

func TestInputWithoutSession(t *testing.T) {
	s := newTestService(fakeCarts{})

	_, ok := s.Input(1, "привет")

	assert.False(t, ok)
}

func TestHappyPath(t *testing.T) {
	s := newTestService(fakeCarts{1: 1})
	_, started := s.Start(1)
	require.True(t, started)

	res, ok := s.Input(1, "Алия")
	require.True(t, ok)
	assert.Equal(t, PromptPhone, res.Reply)

	res, ok = s.Input(1, "998901234567")
	require.True(t, ok)
	assert.Equal(t, PromptAddress, res.Reply)

	res, ok = s.Input(1, "Ташкент, Чиланзар 5")
	require.True(t, ok)
	assert.Equal(t, PromptComment, res.Reply)

	res, ok = s.Input(1, "-")
	require.True(t, ok)
	require.True(t, res.Done)
	assert.Equal(t, Form{
		Name:    "Алия",
		Phone:   "+998901234567",
		Address: "Ташкент, Чиланзар 5",
		Comment: "-",
	}, res.Form)

	// сессию уничтожает вызывающая сторона после успешной отправки
	assert.True(t, s.Active(1))
	s.Finish(1)
	assert.False(t, s.Active(1))
}

func TestEmptyInputRepromptsInPlace(t *testing.T) {
	s := newTestService(fakeCarts{1: 1})
	s.Start(1)

	res, ok := s.Input(1, "   ")
	require.True(t, ok)
	assert.False(t, res.Done)
	assert.Equal(t, "Пусто. Введите значение ещё раз.", res.Reply)

	// шаг не сдвинулся: следующий ввод всё ещё имя
	res, _ = s.Input(1, "Алия")
	assert.Equal(t, PromptPhone, res.Reply)
}

func TestInvalidPhoneReprompts(t *testing.T) {
	s := newTestService(fakeCarts{1: 1})
	s.Start(1)
	s.Input(1, "Алия")

	res, ok := s.Input(1, "abc")
	require.True(t, ok)
	assert.False(t, res.Done)
	assert.Contains(t, res.Reply, "Телефон не распознан")

	// состояние осталось на телефоне, корректный ввод проходит
	res, _ = s.Input(1, "+998 90 123 45 67")
	assert.Equal(t, PromptAddress, res.Reply)
}

func TestMenuLabelIntercepted(t *testing.T) {
	s := newTestService(fakeCarts{1: 1})
	s.Start(1)
	s.Input(1, "Алия")

	// тап по кнопке меню во время ввода телефона: не отмена, не ответ
	res, ok := s.Input(1, "🧺 Корзина")
	require.True(t, ok)
	assert.False(t, res.Done)
	assert.Contains(t, res.Reply, PromptPhone)
	assert.True(t, s.Active(1))

	// и подпись кнопки не попала в поле
	res, _ = s.Input(1, "+998901234567")
	assert.Equal(t, PromptAddress, res.Reply)
}

func TestCancel(t *testing.T) {
	s := newTestService(fakeCarts{1: 1})
	s.Start(1)
	s.Input(1, "Алия")

	assert.True(t, s.Cancel(1))
	assert.False(t, s.Active(1))

	// повторная отмена без сессии
	assert.False(t, s.Cancel(1))

	// после отмены свободный текст снова не принадлежит оформлению
	_, ok := s.Input(1, "что-то")
	assert.False(t, ok)
}

func TestSessionsIndependentPerUser(t *testing.T) {
	s := newTestService(fakeCarts{1: 1, 2: 1})
	s.Start(1)
	s.Start(2)

	s.Input(1, "Алия")
	res, _ := s.Input(2, "Борис")
	assert.Equal(t, PromptPhone, res.Reply)

	s.Cancel(1)
	assert.False(t, s.Active(1))
	assert.True(t, s.Active(2))
}
