package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Repo — каталог, загруженный один раз при старте. После загрузки
// не изменяется, поэтому блокировки не нужны.
type Repo struct {
	byID  map[string]Product
	order []string
}

func Load(path string) (*Repo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var items []Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	r := &Repo{byID: make(map[string]Product, len(items))}
	for _, p := range items {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog %s: product without id", path)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate product id %q", path, p.ID)
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

func (r *Repo) Get(id string) (Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// List возвращает товары в порядке файла каталога.
func (r *Repo) List() []Product {
	out := make([]Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Repo) Len() int { return len(r.order) }

// NamePrice — срез каталога для рендера корзины и подсчёта сумм.
func (r *Repo) NamePrice(id string) (string, int64, bool) {
	p, ok := r.byID[id]
	return p.Name, p.Price, ok
}
