package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"998901234567", "+998901234567"},
		{"+998901234567", "+998901234567"},
		{"+998 90 123 45 67", "+998901234567"},
		{"+998 (90) 123-45-67", "+998901234567"},
		{"  +998901234567  ", "+998901234567"},
		{"+74951234567", "+74951234567"},
		{"abc", ""},
		{"901234567", "901234567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "NormalizePhone(%q)", tc.in)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"+998901234567",
		"+74951234567",
		"+1234567",
	}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), "ValidPhone(%q)", p)
	}

	invalid := []string{
		"",
		"abc",
		"998901234567",  // без плюса
		"+99890123456",  // узбекский номер короче на цифру
		"+9989012345678", // и длиннее
		"+123456",       // слишком короткий международный
		"+998abc123456",
	}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), "ValidPhone(%q)", p)
	}
}
