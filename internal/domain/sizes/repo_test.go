package sizes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSize(t *testing.T) {
	r := NewRepo()
	assert.Equal(t, Default, r.Get(1, "ring-1"))
}

func TestSetAndGet(t *testing.T) {
	r := NewRepo()
	r.Set(1, "ring-1", 18)

	assert.Equal(t, 18, r.Get(1, "ring-1"))
	// другой товар того же пользователя — по-прежнему размер по умолчанию
	assert.Equal(t, Default, r.Get(1, "ring-2"))
	// другой пользователь — тоже
	assert.Equal(t, Default, r.Get(2, "ring-1"))
}

func TestOverwrite(t *testing.T) {
	r := NewRepo()
	r.Set(1, "ring-1", 15)
	r.Set(1, "ring-1", 19)

	assert.Equal(t, 19, r.Get(1, "ring-1"))
}
