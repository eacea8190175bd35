package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

var errStorageDown = errors.New("storage unavailable")

type memStore struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
	products   map[string]*entity.Product
	failWith   error // si no es nil, toda operación falla con este error
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[string]*entity.Category{},
		products:   map[string]*entity.Product{},
	}
}

type memCategoryRepo struct{ s *memStore }

type memProductRepo struct{ s *memStore }

func (s *memStore) categoryRepo() *memCategoryRepo { return &memCategoryRepo{s: s} }
func (s *memStore) productRepo() *memProductRepo   { return &memProductRepo{s: s} }

// RunCatalog implementa ports.CatalogTxRunner: aplica fn sobre una copia y la publica solo si no hubo error.
func (s *memStore) RunCatalog(ctx context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	s.mu.Lock()
	snapshot := &memStore{categories: map[string]*entity.Category{}, products: map[string]*entity.Product{}, failWith: s.failWith}
	for k, v := range s.categories {
		snapshot.categories[k] = v
	}
	for k, v := range s.products {
		snapshot.products[k] = v
	}
	s.mu.Unlock()

	if err := fn(snapshot.categoryRepo(), snapshot.productRepo()); err != nil {
		return err
	}
	s.mu.Lock()
	s.categories, s.products = snapshot.categories, snapshot.products
	s.mu.Unlock()
	return nil
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, c := range r.s.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) List(_ context.Context, q repository.PageQuery) (repository.Page[*entity.Category], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return repository.Page[*entity.Category]{}, r.s.failWith
	}
	all := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		all = append(all, &cp)
	}
	key := func(c *entity.Category) string {
		if q.SortBy == "categoryName" {
			return c.Name
		}
		return c.ID
	}
	sort.SliceStable(all, func(i, j int) bool {
		if q.Direction == repository.SortAsc {
			return key(all[i]) < key(all[j])
		}
		return key(all[i]) > key(all[j])
	})
	return paginate(all, q), nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	delete(r.s.categories, id)
	return nil
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCategoryAndName(_ context.Context, categoryID, name string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, p := range r.s.products {
		if p.CategoryID == categoryID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.Create(context.Background(), p)
}

func (r *memProductRepo) List(ctx context.Context, q repository.PageQuery) (repository.Page[*entity.Product], error) {
	return r.filter(q, false, func(*entity.Product) bool { return true })
}

func (r *memProductRepo) ListByCategory(_ context.Context, categoryID string, q repository.PageQuery) (repository.Page[*entity.Product], error) {
	return r.filter(q, true, func(p *entity.Product) bool { return p.CategoryID == categoryID })
}

func (r *memProductRepo) SearchByName(_ context.Context, keyword string, q repository.PageQuery) (repository.Page[*entity.Product], error) {
	kw := strings.ToLower(keyword)
	return r.filter(q, false, func(p *entity.Product) bool { return strings.Contains(strings.ToLower(p.Name), kw) })
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	delete(r.s.products, id)
	return nil
}

func (r *memProductRepo) DeleteByCategory(_ context.Context, categoryID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return 0, r.s.failWith
	}
	var n int64
	for id, p := range r.s.products {
		if p.CategoryID == categoryID {
			delete(r.s.products, id)
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) filter(q repository.PageQuery, priceFirst bool, keep func(*entity.Product) bool) (repository.Page[*entity.Product], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return repository.Page[*entity.Product]{}, r.s.failWith
	}
	var all []*entity.Product
	for _, p := range r.s.products {
		if keep(p) {
			cp := *p
			all = append(all, &cp)
		}
	}
	less := func(a, b *entity.Product) int {
		switch q.SortBy {
		case "productName":
			return strings.Compare(a.Name, b.Name)
		case "price":
			return a.Price.Cmp(b.Price)
		case "discount":
			return a.Discount.Cmp(b.Discount)
		case "specialPrice":
			return a.SpecialPrice.Cmp(b.SpecialPrice)
		case "quantity":
			return a.Quantity - b.Quantity
		default:
			return strings.Compare(a.ID, b.ID)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if priceFirst {
			if c := all[i].Price.Cmp(all[j].Price); c != 0 {
				return c < 0
			}
		}
		c := less(all[i], all[j])
		if q.Direction == repository.SortAsc {
			return c < 0
		}
		return c > 0
	})
	return paginate(all, q), nil
}

func paginate[T any](all []T, q repository.PageQuery) repository.Page[T] {
	start := q.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + q.PageSize
	if end > len(all) {
		end = len(all)
	}
	return repository.Page[T]{
		Content:       all[start:end],
		PageNumber:    q.PageNumber,
		PageSize:      q.PageSize,
		TotalElements: int64(len(all)),
	}
}

// fakeImageStorage registra lo recibido y devuelve un nombre fijo.
type fakeImageStorage struct {
	name     string
	err      error
	received []byte
}

func (f *fakeImageStorage) Store(_ context.Context, _ string, data io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, data); err != nil {
		return "", err
	}
	f.received = buf.Bytes()
	return f.name, nil
}

// fakePriceList registra los productos recibidos.
type fakePriceList struct {
	category *entity.Category
	products []*entity.Product
}

func (f *fakePriceList) GeneratePriceList(_ context.Context, c *entity.Category, ps []*entity.Product) ([]byte, error) {
	f.category = c
	f.products = ps
	return []byte("%PDF-fake"), nil
}
