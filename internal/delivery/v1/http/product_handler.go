package http

import (
	"mime/multipart"
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

const (
	maxMemory        = 8 << 20
	multipartReserve = 1 << 20 // запас на текстовые поля формы сверх размера изображения
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
	maxImageBytes  int64
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger, maxImageBytes int64) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger, maxImageBytes: maxImageBytes}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создает товар в каталоге. Изображение необязательно.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string	true	"Название товара"	maxlength(200)
//	@Param			description		formData	string	true	"Описание"	maxlength(2000)
//	@Param			price			formData	string	true	"Цена, не больше двух знаков после точки"
//	@Param			stock_quantity	formData	int		false	"Остаток"	default(0)	minimum(0)
//	@Param			category_id		formData	string	true	"ID категории"	format(uuid)
//	@Param			is_active		formData	bool	false	"Активен"	default(true)
//	@Param			image			formData	file	false	"Изображение товара"
//	@Success		201				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	form, image, file, err := p.readForm(w, r)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	defer closeFile(file)

	product, err := p.productUsecase.Create(r.Context(), form.toCreateReq(), image)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Все поля заменяются. remove_image=true удаляет изображение, новый файл заменяет его, иначе изображение сохраняется.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id				path		string	true	"ID товара"	format(uuid)
//	@Param			name			formData	string	true	"Название товара"
//	@Param			description		formData	string	true	"Описание"
//	@Param			price			formData	string	true	"Цена"
//	@Param			stock_quantity	formData	int		false	"Остаток"
//	@Param			category_id		formData	string	true	"ID категории"	format(uuid)
//	@Param			is_active		formData	bool	false	"Активен"
//	@Param			remove_image	formData	bool	false	"Удалить изображение"
//	@Param			image			formData	file	false	"Новое изображение"
//	@Success		200				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	form, image, file, err := p.readForm(w, r)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	defer closeFile(file)

	product, err := p.productUsecase.Update(r.Context(), form.toUpdateReq(id), image)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"	format(uuid)
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	product, err := p.productUsecase.Delete(r.Context(), id)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// getProduct
//
//	@Summary	Товар по ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"	format(uuid)
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	product, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	if product == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Сортировка по имени
//	@Tags			products
//	@Produce		json
//	@Param			page		query		int	false	"Номер страницы"	default(1)
//	@Param			page_size	query		int	false	"Размер страницы"	default(10)	maximum(100)
//	@Success		200			{object}	PageResponse[ProductResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	res, err := p.productUsecase.GetAll(r.Context(), page)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPageResponse(res, toProductResponse))
}

// searchProducts
//
//	@Summary		Поиск товаров по фильтрам
//	@Description	Все фильтры необязательны и объединяются через AND. Сортировка по имени.
//	@Tags			products
//	@Produce		json
//	@Param			category_id	query		string	false	"ID категории"	format(uuid)
//	@Param			min_price	query		string	false	"Минимальная цена"
//	@Param			max_price	query		string	false	"Максимальная цена"
//	@Param			is_active	query		bool	false	"Активность"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	products, err := p.productUsecase.GetByFilters(r.Context(), filter)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

func (p *ProductHandler) readForm(w http.ResponseWriter, r *http.Request) (*ProductForm, *usecase.ProductImage, multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, p.maxImageBytes+multipartReserve)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		return nil, nil, nil, err
	}

	form, err := parseProductForm(r)
	if err != nil {
		return nil, nil, nil, err
	}

	image, file, err := openImage(r, p.maxImageBytes)
	if err != nil {
		return nil, nil, nil, err
	}

	return form, image, file, nil
}

func closeFile(f multipart.File) {
	if f != nil {
		_ = f.Close()
	}
}

func (p *ProductHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logError(p.logger, r, err)
	WriteError(w, err)
}
