package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/google/uuid"
)

// In-memory реализации портов для тестов usecase.

type fakeCategoryRepo struct {
	mu          sync.Mutex
	categories  map[uuid.UUID]domain.Category
	getCalls    int
	nameCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	err         error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]domain.Category)}
}

func (f *fakeCategoryRepo) seed(name string) domain.Category {
	c := domain.NewCategory(name, nil)
	f.categories[c.ID] = *c
	return *c
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.categories[c.ID] = *c
	out := *c
	return &out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.categories[c.ID] = *c
	out := *c
	return &out, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, c *domain.Category) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.err != nil {
		return nil, f.err
	}
	delete(f.categories, c.ID)
	out := *c
	return &out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) GetName(_ context.Context, id uuid.UUID) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nameCalls++
	if f.err != nil {
		return "", false, f.err
	}
	c, ok := f.categories[id]
	return c.Name, ok, nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context, pageNumber, pageSize int) ([]domain.Category, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, pageNumber, pageSize), len(all), nil
}

type fakeProductRepo struct {
	mu          sync.Mutex
	products    map[uuid.UUID]domain.Product
	categories  *fakeCategoryRepo // если задан, чтения заполняют Product.Category
	createCalls int
	updateCalls int
	deleteCalls int
	err         error
	lastFilter  ProductFilter
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]domain.Product)}
}

func (f *fakeProductRepo) persistCalls() int {
	return f.createCalls + f.updateCalls + f.deleteCalls
}

func (f *fakeProductRepo) load(p domain.Product) domain.Product {
	p.Category = nil
	if f.categories != nil {
		if c, ok := f.categories.categories[p.CategoryID]; ok {
			p.Category = &c
		}
	}
	return p
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.products[p.ID] = *p
	out := *p
	return &out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.products[p.ID] = *p
	out := *p
	return &out, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.err != nil {
		return nil, f.err
	}
	delete(f.products, p.ID)
	out := *p
	return &out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	out := f.load(p)
	return &out, nil
}

func (f *fakeProductRepo) sorted() []domain.Product {
	all := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		all = append(all, f.load(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func (f *fakeProductRepo) GetAll(_ context.Context, pageNumber, pageSize int) ([]domain.Product, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.sorted()
	return paginate(all, pageNumber, pageSize), len(all), nil
}

func (f *fakeProductRepo) GetByFilters(_ context.Context, filter ProductFilter) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	result := make([]domain.Product, 0)
	for _, p := range f.sorted() {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func paginate[T any](all []T, pageNumber, pageSize int) []T {
	start := (pageNumber - 1) * pageSize
	if start < 0 || start >= len(all) {
		return []T{}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
	err    error
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error { return nil }

func (f *fakeOutboxRepo) MarkAsPending(context.Context, int64, time.Duration, string) error {
	return nil
}

func (f *fakeOutboxRepo) MarkAsFailed(context.Context, int64, string) error { return nil }

func (f *fakeOutboxRepo) RequeueStale(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

// fakeTxManager вызывает fn без транзакции и считает вызовы.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeImages struct {
	mu       sync.Mutex
	uploads  []string
	cleaned  []string
	err      error
	sequence int
}

func (f *fakeImages) UploadImage(_ context.Context, image *ProductImage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(image.Reader); err != nil {
		return "", err
	}
	f.sequence++
	url := "https://cdn.example.com/products/" + image.FileName + "-" + string(rune('a'+f.sequence))
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeImages) CleanupImages(urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, urls...)
}

var errStorage = errors.New("storage unavailable")
