package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		data string
		want Action
	}{
		{"p:ring-1", Action{Kind: ActionOpenProduct, ProductID: "ring-1"}},
		{"s:ring-1:17", Action{Kind: ActionPickSize, ProductID: "ring-1", Size: 17}},
		{"add:ring-1", Action{Kind: ActionAddToCart, ProductID: "ring-1"}},
		{"inc:0", Action{Kind: ActionIncLine, Index: 0}},
		{"dec:2", Action{Kind: ActionDecLine, Index: 2}},
		{"del:1", Action{Kind: ActionDelLine, Index: 1}},
		{"cart:clear", Action{Kind: ActionClearCart}},
		{"checkout:start", Action{Kind: ActionStartCheckout}},
		{"back:catalog", Action{Kind: ActionBackToCatalog}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseAction(tc.data), "parseAction(%q)", tc.data)
	}
}

func TestParseActionMalformed(t *testing.T) {
	// битые и чужие токены не должны превращаться в действия
	malformed := []string{
		"",
		"p",
		"p:",
		"s:ring-1",
		"s:ring-1:xx",
		"s::17",
		"inc:abc",
		"inc:-1",
		"del:",
		"unknown:token",
		"cart:nuke",
	}
	for _, data := range malformed {
		assert.Equal(t, Action{}, parseAction(data), "parseAction(%q)", data)
	}
}
