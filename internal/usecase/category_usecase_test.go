package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryUC(repo *fakeCategoryRepo) *CategoryUseCase {
	return NewCategoryUC(repo, logger.NewNop())
}

func TestCategoryCreate(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo)
	desc := "Descrição Teste"

	got, err := uc.Create(context.Background(), NewCreateCategoryReq("Categoria Teste", &desc))

	require.NoError(t, err)
	assert.Equal(t, "Categoria Teste", got.Name)
	assert.Equal(t, &desc, got.Description)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCategoryCreateAllowsDuplicateNames(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo)

	a, err := uc.Create(context.Background(), NewCreateCategoryReq("Books", nil))
	require.NoError(t, err)
	b, err := uc.Create(context.Background(), NewCreateCategoryReq("Books", nil))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, repo.categories, 2)
}

func TestCategoryCreatePropagatesRepoError(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.err = errStorage
	uc := newCategoryUC(repo)

	_, err := uc.Create(context.Background(), NewCreateCategoryReq("Books", nil))

	assert.ErrorIs(t, err, errStorage)
}

func TestCategoryUpdate(t *testing.T) {
	repo := newFakeCategoryRepo()
	existing := repo.seed("Old Name")
	uc := newCategoryUC(repo)
	desc := "New Desc"

	got, err := uc.Update(context.Background(), NewUpdateCategoryReq(existing.ID, "New Name", &desc))

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "New Desc", *got.Description)
	assert.Equal(t, "New Name", repo.categories[existing.ID].Name)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestCategoryUpdateClearsDescription(t *testing.T) {
	repo := newFakeCategoryRepo()
	desc := "to be removed"
	existing := repo.seed("Name")
	c := repo.categories[existing.ID]
	c.Description = &desc
	repo.categories[existing.ID] = c
	uc := newCategoryUC(repo)

	got, err := uc.Update(context.Background(), NewUpdateCategoryReq(existing.ID, "Name", nil))

	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo)

	_, err := uc.Update(context.Background(), NewUpdateCategoryReq(uuid.New(), "New Name", nil))

	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.NotErrorIs(t, err, e.ErrInvalidArgument)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestCategoryDelete(t *testing.T) {
	repo := newFakeCategoryRepo()
	existing := repo.seed("Categoria Teste")
	uc := newCategoryUC(repo)

	got, err := uc.Delete(context.Background(), existing.ID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Categoria Teste", got.Name)
	assert.Empty(t, repo.categories)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo)

	_, err := uc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestCategoryDeletePropagatesConflict(t *testing.T) {
	repo := newFakeCategoryRepo()
	existing := repo.seed("In use")
	repo.err = e.ErrCategoryInUse
	uc := newCategoryUC(repo)

	_, err := uc.Delete(context.Background(), existing.ID)

	assert.ErrorIs(t, err, e.ErrConflict)
}

func TestCategoryGetByID(t *testing.T) {
	repo := newFakeCategoryRepo()
	existing := repo.seed("Categoria Teste")
	uc := newCategoryUC(repo)

	got, err := uc.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Categoria Teste", got.Name)

	missing, err := uc.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryGetAll(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.seed("Cat 2")
	repo.seed("Cat 1")
	uc := newCategoryUC(repo)

	res, err := uc.GetAll(context.Background(), NewPaginationReq(1, 10))

	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Cat 1", res.Data[0].Name)
	assert.Equal(t, "Cat 2", res.Data[1].Name)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 10, res.PageSize)
	assert.False(t, res.HasNext)
}

func TestCategoryGetAllSecondPage(t *testing.T) {
	repo := newFakeCategoryRepo()
	for i := 0; i < 5; i++ {
		repo.seed(fmt.Sprintf("Cat %d", i))
	}
	uc := newCategoryUC(repo)

	first, err := uc.GetAll(context.Background(), NewPaginationReq(1, 2))
	require.NoError(t, err)
	assert.True(t, first.HasNext)
	assert.Equal(t, []string{"Cat 0", "Cat 1"}, []string{first.Data[0].Name, first.Data[1].Name})

	last, err := uc.GetAll(context.Background(), NewPaginationReq(3, 2))
	require.NoError(t, err)
	assert.False(t, last.HasNext)
	require.Len(t, last.Data, 1)
	assert.Equal(t, "Cat 4", last.Data[0].Name)
	assert.Equal(t, 5, last.TotalCount)
}

func TestProperty_CategoryCreatePreservesName(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("created category name equals requested name", prop.ForAll(
		func(name string) bool {
			uc := newCategoryUC(newFakeCategoryRepo())
			got, err := uc.Create(context.Background(), NewCreateCategoryReq(name, nil))
			return err == nil && got.Name == name
		},
		gen.AnyString(),
	))

	properties.Property("updating an unknown id fails with not found only", prop.ForAll(
		func(name string) bool {
			uc := newCategoryUC(newFakeCategoryRepo())
			_, err := uc.Update(context.Background(), NewUpdateCategoryReq(uuid.New(), name, nil))
			return errors.Is(err, e.ErrNotFound) && !errors.Is(err, e.ErrInvalidArgument)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
