package dialog

import (
	"strings"
	"unicode"
)

// NormalizePhone убирает из ввода всё, кроме цифр, сохраняя ведущий «+».
// Номер из 12 цифр с национальным префиксом 998 получает «+» автоматически.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	if strings.HasPrefix(raw, "+") {
		return "+" + digits
	}
	if strings.HasPrefix(digits, "998") && len(digits) == 12 {
		return "+" + digits
	}
	return digits
}

// ValidPhone принимает уже нормализованный номер: либо полный узбекский
// +998 и 9 цифр, либо любой международный «+» и не меньше 7 цифр.
func ValidPhone(phone string) bool {
	if !strings.HasPrefix(phone, "+") {
		return false
	}
	digits := phone[1:]
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	if strings.HasPrefix(digits, "998") {
		return len(digits) == 12
	}
	return len(digits) >= 7
}
