package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	outbox     *fakeOutboxRepo
	tx         *fakeTxManager
	images     *fakeImages
	uc         *ProductUseCase
}

func newProductFixture() *productFixture {
	f := &productFixture{
		categories: newFakeCategoryRepo(),
		products:   newFakeProductRepo(),
		outbox:     &fakeOutboxRepo{},
		tx:         &fakeTxManager{},
		images:     &fakeImages{},
	}
	f.products.categories = f.categories
	f.uc = NewProductUC(f.products, f.categories, f.outbox, f.tx, f.images, logger.NewNop())
	return f
}

func (f *productFixture) seedProduct(name string, price string, active bool, categoryID uuid.UUID) domain.Product {
	p := domain.NewProduct(name, "desc "+name, decimal.RequireFromString(price), 1, active, categoryID)
	f.products.products[p.ID] = *p
	return *p
}

func createReq(name string, price string, categoryID uuid.UUID) *CreateProductReq {
	return &CreateProductReq{
		Name:          name,
		Description:   "Descrição",
		Price:         decimal.RequireFromString(price),
		StockQuantity: 10,
		CategoryID:    categoryID,
		IsActive:      true,
	}
}

func updateReqFrom(p domain.Product) *UpdateProductReq {
	return &UpdateProductReq{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CategoryID:    p.CategoryID,
	}
}

func pngImage(name string) *ProductImage {
	ct := "image/png"
	body := []byte("\x89PNG fake")
	return NewProductImage(bytes.NewReader(body), int64(len(body)), name, &ct)
}

func TestProductCreate(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Eletrônicos")

	got, err := f.uc.Create(context.Background(), createReq("Produto Teste", "99.99", cat.ID), nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Produto Teste", got.Name)
	assert.True(t, decimal.RequireFromString("99.99").Equal(got.Price))
	assert.Equal(t, 10, got.StockQuantity)
	assert.True(t, got.IsActive)
	assert.Equal(t, "Eletrônicos", got.CategoryName)
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.UpdatedAt)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, 1, f.products.createCalls)
	assert.Empty(t, f.images.uploads)
}

func TestProductCreateWithImage(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")

	got, err := f.uc.Create(context.Background(), createReq("Novel", "10", cat.ID), pngImage("cover.png"))

	require.NoError(t, err)
	require.NotNil(t, got.ImageURL)
	require.Len(t, f.images.uploads, 1)
	assert.Equal(t, f.images.uploads[0], *got.ImageURL)
	assert.Equal(t, f.images.uploads[0], *f.products.products[got.ID].ImageURL)
}

func TestProductCreateUnknownCategory(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.Create(context.Background(), createReq("Orphan", "1", uuid.New()), pngImage("x.png"))

	assert.ErrorIs(t, err, e.ErrInvalidArgument)
	assert.ErrorIs(t, err, e.ErrCategoryReference)
	assert.NotErrorIs(t, err, e.ErrNotFound)
	assert.Equal(t, 0, f.products.persistCalls())
	assert.Empty(t, f.images.uploads)
	assert.Empty(t, f.outbox.events)
}

func TestProductWritesLookUpCategoryNameOnly(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	other := f.categories.seed("Music")

	created, err := f.uc.Create(context.Background(), createReq("Novel", "10", cat.ID), nil)
	require.NoError(t, err)

	req := &UpdateProductReq{
		ID:            created.ID,
		Name:          "Album",
		Description:   "Vinyl",
		Price:         decimal.RequireFromString("25"),
		StockQuantity: 3,
		IsActive:      true,
		CategoryID:    other.ID,
	}
	updated, err := f.uc.Update(context.Background(), req, nil)

	require.NoError(t, err)
	assert.Equal(t, "Books", created.CategoryName)
	assert.Equal(t, "Music", updated.CategoryName)
	assert.Equal(t, 2, f.categories.nameCalls)
	assert.Zero(t, f.categories.getCalls)
}

func TestProductCreateUploadFailure(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	f.images.err = errStorage

	_, err := f.uc.Create(context.Background(), createReq("Novel", "10", cat.ID), pngImage("cover.png"))

	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, 0, f.products.persistCalls())
}

func TestProductCreateWritesOutboxEvent(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")

	got, err := f.uc.Create(context.Background(), createReq("Novel", "10", cat.ID), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, ProductCreated, f.outbox.events[0].EventType)
	assert.Equal(t, got.ID, f.outbox.events[0].ProductID)
	assert.Equal(t, Pending, f.outbox.events[0].Status)
}

func TestProductCreateOutboxFailure(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	f.outbox.err = errStorage

	_, err := f.uc.Create(context.Background(), createReq("Novel", "10", cat.ID), nil)

	assert.ErrorIs(t, err, errStorage)
}

func TestProductUpdate(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Old")
	other := f.categories.seed("New")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	before := time.Now().UTC()

	req := updateReqFrom(existing)
	req.Name = "Produto Atualizado"
	req.Price = decimal.RequireFromString("149.90")
	req.StockQuantity = 3
	req.IsActive = false
	req.CategoryID = other.ID

	got, err := f.uc.Update(context.Background(), req, nil)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Produto Atualizado", got.Name)
	assert.True(t, decimal.RequireFromString("149.9").Equal(got.Price))
	assert.Equal(t, 3, got.StockQuantity)
	assert.False(t, got.IsActive)
	assert.Equal(t, other.ID, got.CategoryID)
	assert.Equal(t, "New", got.CategoryName)
	require.NotNil(t, got.UpdatedAt)
	assert.False(t, got.UpdatedAt.Before(before))
	assert.Equal(t, existing.CreatedAt, got.CreatedAt)

	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, ProductUpdated, f.outbox.events[0].EventType)
}

func TestProductUpdateNotFound(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")

	req := &UpdateProductReq{ID: uuid.New(), Name: "x", Price: decimal.NewFromInt(1), CategoryID: cat.ID}
	_, err := f.uc.Update(context.Background(), req, nil)

	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.Equal(t, 0, f.products.persistCalls())
}

func TestProductUpdateUnknownCategoryKeepsProduct(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)

	req := updateReqFrom(existing)
	req.Name = "Changed"
	req.CategoryID = uuid.New()
	_, err := f.uc.Update(context.Background(), req, pngImage("new.png"))

	assert.ErrorIs(t, err, e.ErrInvalidArgument)
	assert.Equal(t, 0, f.products.persistCalls())
	assert.Empty(t, f.images.uploads)
	assert.Equal(t, "Phone", f.products.products[existing.ID].Name)
	assert.Equal(t, cat.ID, f.products.products[existing.ID].CategoryID)
}

func TestProductUpdateRemoveImage(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	old := "https://cdn.example.com/products/old.png"
	existing.ImageURL = &old
	f.products.products[existing.ID] = existing

	req := updateReqFrom(existing)
	req.RemoveImage = true
	got, err := f.uc.Update(context.Background(), req, pngImage("ignored.png"))

	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, f.products.products[existing.ID].ImageURL)
	assert.Empty(t, f.images.uploads)
	assert.Equal(t, []string{old}, f.images.cleaned)
}

func TestProductUpdateReplacesImage(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	old := "https://cdn.example.com/products/old.png"
	existing.ImageURL = &old
	f.products.products[existing.ID] = existing

	got, err := f.uc.Update(context.Background(), updateReqFrom(existing), pngImage("new.png"))

	require.NoError(t, err)
	require.NotNil(t, got.ImageURL)
	require.Len(t, f.images.uploads, 1)
	assert.Equal(t, f.images.uploads[0], *got.ImageURL)
	assert.Equal(t, []string{old}, f.images.cleaned)
}

func TestProductUpdateKeepsImage(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	old := "https://cdn.example.com/products/old.png"
	existing.ImageURL = &old
	f.products.products[existing.ID] = existing

	req := updateReqFrom(existing)
	req.Name = "Phone 2"
	got, err := f.uc.Update(context.Background(), req, nil)

	require.NoError(t, err)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, old, *got.ImageURL)
	assert.Empty(t, f.images.cleaned)
}

func TestProductUpdateFailedWriteKeepsOldImage(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	old := "https://cdn.example.com/products/old.png"
	existing.ImageURL = &old
	f.products.products[existing.ID] = existing
	f.outbox.err = errStorage

	_, err := f.uc.Update(context.Background(), updateReqFrom(existing), pngImage("new.png"))

	assert.ErrorIs(t, err, errStorage)
	assert.Empty(t, f.images.cleaned)
}

func TestProductDelete(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	img := "https://cdn.example.com/products/p.png"
	existing.ImageURL = &img
	f.products.products[existing.ID] = existing

	got, err := f.uc.Delete(context.Background(), existing.ID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Phone", got.Name)
	assert.Equal(t, "Books", got.CategoryName)
	assert.Empty(t, f.products.products)
	assert.Equal(t, []string{img}, f.images.cleaned)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, ProductDeleted, f.outbox.events[0].EventType)
}

func TestProductDeleteNotFound(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Equal(t, 0, f.products.deleteCalls)
	assert.Empty(t, f.outbox.events)
}

func TestProductGetByID(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)

	got, err := f.uc.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Books", got.CategoryName)

	missing, err := f.uc.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductGetByIDRefetchesCategory(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	existing := f.seedProduct("Phone", "100", true, cat.ID)
	f.products.categories = nil

	got, err := f.uc.GetByID(context.Background(), existing.ID)

	require.NoError(t, err)
	assert.Equal(t, "Books", got.CategoryName)
	assert.Equal(t, 1, f.categories.nameCalls)
	assert.Zero(t, f.categories.getCalls)
}

func TestProductGetByFiltersNoFilters(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	f.seedProduct("B", "20", true, cat.ID)
	f.seedProduct("A", "10", false, cat.ID)
	f.seedProduct("C", "30", true, cat.ID)

	got, err := f.uc.GetByFilters(context.Background(), ProductFilter{})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].Name, got[1].Name, got[2].Name})
	for _, p := range got {
		assert.Equal(t, "Books", p.CategoryName)
	}
}

func TestProductGetByFiltersCombined(t *testing.T) {
	f := newProductFixture()
	books := f.categories.seed("Books")
	games := f.categories.seed("Games")
	f.seedProduct("Cheap book", "5", true, books.ID)
	f.seedProduct("Book", "50", true, books.ID)
	f.seedProduct("Hidden book", "50", false, books.ID)
	f.seedProduct("Game", "50", true, games.ID)

	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(100)
	active := true
	filter := ProductFilter{CategoryID: &books.ID, MinPrice: &minPrice, MaxPrice: &maxPrice, IsActive: &active}

	got, err := f.uc.GetByFilters(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Book", got[0].Name)
	assert.Equal(t, filter, f.products.lastFilter)
}

func TestProductGetByFiltersEmpty(t *testing.T) {
	f := newProductFixture()
	active := true

	got, err := f.uc.GetByFilters(context.Background(), ProductFilter{IsActive: &active})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProductGetAll(t *testing.T) {
	f := newProductFixture()
	cat := f.categories.seed("Books")
	f.seedProduct("Produto 2", "20", true, cat.ID)
	f.seedProduct("Produto 1", "10", true, cat.ID)
	f.seedProduct("Produto 3", "30", true, cat.ID)

	res, err := f.uc.GetAll(context.Background(), NewPaginationReq(1, 2))

	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Produto 1", res.Data[0].Name)
	assert.Equal(t, "Produto 2", res.Data[1].Name)
	assert.Equal(t, "Books", res.Data[0].CategoryName)
	assert.Equal(t, 3, res.TotalCount)
	assert.True(t, res.HasNext)

	res, err = f.uc.GetAll(context.Background(), NewPaginationReq(2, 2))
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.False(t, res.HasNext)
}

func TestCatalogScenario(t *testing.T) {
	f := newProductFixture()
	catUC := NewCategoryUC(f.categories, logger.NewNop())
	ctx := context.Background()

	electronics, err := catUC.Create(ctx, NewCreateCategoryReq("Electronics", nil))
	require.NoError(t, err)

	phone, err := f.uc.Create(ctx, createReq("Phone", "499.90", electronics.ID), nil)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", phone.CategoryName)

	all, err := f.uc.GetAll(ctx, NewPaginationReq(1, 10))
	require.NoError(t, err)
	require.Len(t, all.Data, 1)
	assert.Equal(t, phone.ID, all.Data[0].ID)

	cat, err := catUC.GetByID(ctx, electronics.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", cat.Name)

	_, err = f.uc.Delete(ctx, phone.ID)
	require.NoError(t, err)

	_, err = catUC.Delete(ctx, electronics.ID)
	require.NoError(t, err)

	missing, err := catUC.GetByID(ctx, electronics.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProperty_UnknownCategoryNeverPersists(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("create with unknown category does not touch storage", prop.ForAll(
		func(name string, cents int64) bool {
			f := newProductFixture()
			req := &CreateProductReq{Name: name, Price: decimal.New(cents, -2), CategoryID: uuid.New()}
			_, err := f.uc.Create(context.Background(), req, nil)
			return err != nil && f.products.persistCalls() == 0 && len(f.outbox.events) == 0
		},
		gen.AlphaString(),
		gen.Int64Range(0, 1_000_000),
	))

	properties.Property("created product keeps price exactly", prop.ForAll(
		func(cents int64) bool {
			f := newProductFixture()
			cat := f.categories.seed("Books")
			price := decimal.New(cents, -2)
			got, err := f.uc.Create(context.Background(), &CreateProductReq{Name: "p", Price: price, CategoryID: cat.ID}, nil)
			return err == nil && got.Price.Equal(price)
		},
		gen.Int64Range(0, 9_999_999_999),
	))

	properties.TestingRun(t)
}
