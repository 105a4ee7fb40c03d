package sizes

import "sync"

// Допустимые размеры колец. Клавиатура предлагает только их,
// другие значения сюда не попадают.
var Allowed = []int{15, 16, 17, 18, 19}

const Default = 17

// Repo помнит последний выбранный размер на пару (пользователь, товар).
// Живёт независимо от корзины: очистка корзины и оформление заказа выбор
// не сбрасывают, повторное добавление товара берёт прошлый размер.
type Repo struct {
	mu       sync.Mutex
	selected map[int64]map[string]int
}

func NewRepo() *Repo {
	return &Repo{selected: make(map[int64]map[string]int)}
}

func (r *Repo) Get(userID int64, productID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.selected[userID]; ok {
		if s, ok := m[productID]; ok {
			return s
		}
	}
	return Default
}

func (r *Repo) Set(userID int64, productID string, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.selected[userID]
	if !ok {
		m = make(map[string]int)
		r.selected[userID] = m
	}
	m[productID] = size
}
