package bot

import (
	"strconv"
	"strings"
)

// ActionKind — разобранное намерение inline-кнопки.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpenProduct
	ActionPickSize
	ActionAddToCart
	ActionIncLine
	ActionDecLine
	ActionDelLine
	ActionClearCart
	ActionStartCheckout
	ActionBackToCatalog
)

// Action — callback-токен, разобранный один раз на границе. Дальше
// обработчики работают с типизированными полями, а не со строкой.
type Action struct {
	Kind      ActionKind
	ProductID string
	Size      int
	Index     int
}

// parseAction разбирает токены вида "p:<id>", "s:<id>:<размер>",
// "inc:<индекс>" и т.п. Непонятный или битый токен превращается в
// ActionNone: такие кнопки просто ничего не делают.
func parseAction(data string) Action {
	switch data {
	case "cart:clear":
		return Action{Kind: ActionClearCart}
	case "checkout:start":
		return Action{Kind: ActionStartCheckout}
	case "back:catalog":
		return Action{Kind: ActionBackToCatalog}
	}

	prefix, rest, ok := strings.Cut(data, ":")
	if !ok || rest == "" {
		return Action{}
	}

	switch prefix {
	case "p":
		return Action{Kind: ActionOpenProduct, ProductID: rest}

	case "add":
		return Action{Kind: ActionAddToCart, ProductID: rest}

	case "s":
		pid, sizeStr, ok := strings.Cut(rest, ":")
		if !ok || pid == "" {
			return Action{}
		}
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return Action{}
		}
		return Action{Kind: ActionPickSize, ProductID: pid, Size: size}

	case "inc", "dec", "del":
		idx, err := strconv.Atoi(rest)
		if err != nil || idx < 0 {
			return Action{}
		}
		kind := ActionIncLine
		if prefix == "dec" {
			kind = ActionDecLine
		} else if prefix == "del" {
			kind = ActionDelLine
		}
		return Action{Kind: kind, Index: idx}
	}
	return Action{}
}
