package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

const maxJSONBodySize = 1 << 20

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// createCategory
//
//	@Summary		Создание категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Категория"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	var req CategoryRequest
	if err := decodeCategory(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	category, err := c.categoryUsecase.Create(r.Context(), usecase.NewCreateCategoryReq(req.Name, req.Description))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary		Обновление категории
//	@Description	Имя и описание заменяются целиком
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"ID категории"	format(uuid)
//	@Param			request	body		CategoryRequest	true	"Категория"
//	@Success		200		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/categories/{id} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	var req CategoryRequest
	if err := decodeCategory(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	category, err := c.categoryUsecase.Update(r.Context(), usecase.NewUpdateCategoryReq(id, req.Name, req.Description))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Категорию, в которой есть продукты, удалить нельзя (409)
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string	true	"ID категории"	format(uuid)
//	@Success		200	{object}	CategoryResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	category, err := c.categoryUsecase.Delete(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// getCategory
//
//	@Summary		Категория с продуктами
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string	true	"ID категории"	format(uuid)
//	@Success		200	{object}	CategoryResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [get]
func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	category, err := c.categoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	if category == nil {
		WriteError(w, e.ErrCategoryNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Сортировка по имени
//	@Tags			categories
//	@Produce		json
//	@Param			page		query		int	false	"Номер страницы"	default(1)	minimum(1)
//	@Param			page_size	query		int	false	"Размер страницы"	default(10)	minimum(1)	maximum(100)
//	@Success		200			{object}	PageResponse[CategoryResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Router			/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	res, err := c.categoryUsecase.GetAll(r.Context(), page)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPageResponse(res, func(c *domain.Category) CategoryResponse {
		return toCategoryResponse(c)
	}))
}

func decodeCategory(r *http.Request, req *CategoryRequest) error {
	if err := decodeAndValidate(r, req); err != nil {
		return err
	}

	req.normalize()
	return validate.Struct(req)
}

func (c *CategoryHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logError(c.logger, r, err)
	WriteError(w, err)
}
