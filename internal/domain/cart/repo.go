package cart

import "sync"

// Repo хранит корзины в памяти процесса, ключ — telegram id пользователя.
// Порядок позиций — порядок добавления: кнопки в корзине адресуют позиции
// по индексу текущего рендера.
type Repo struct {
	mu    sync.Mutex
	carts map[int64][]Line
}

func NewRepo() *Repo {
	return &Repo{carts: make(map[int64][]Line)}
}

// Add добавляет товар выбранного размера. Если такая пара уже в корзине —
// увеличивает количество, новая позиция не создаётся.
func (r *Repo) Add(userID int64, productID string, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Size == size {
			lines[i].Qty++
			return
		}
	}
	r.carts[userID] = append(lines, Line{ProductID: productID, Size: size, Qty: 1})
}

// ChangeQty меняет количество позиции на delta (±1). Количество ≤ 0
// удаляет позицию. Индекс вне диапазона игнорируется: кнопка могла
// остаться от устаревшего рендера.
func (r *Repo) ChangeQty(userID int64, idx, delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[userID]
	if idx < 0 || idx >= len(lines) {
		return
	}
	lines[idx].Qty += delta
	if lines[idx].Qty <= 0 {
		r.carts[userID] = append(lines[:idx], lines[idx+1:]...)
	}
}

// Remove удаляет позицию по индексу; вне диапазона — no-op.
func (r *Repo) Remove(userID int64, idx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[userID]
	if idx < 0 || idx >= len(lines) {
		return
	}
	r.carts[userID] = append(lines[:idx], lines[idx+1:]...)
}

func (r *Repo) Clear(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
}

// Lines возвращает копию корзины: снаружи её можно читать и рендерить,
// не держа блокировку.
func (r *Repo) Lines(userID int64) []Line {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[userID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

func (r *Repo) Len(userID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts[userID])
}
