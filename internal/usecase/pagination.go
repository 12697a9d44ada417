package usecase

// PaginationReq — номер страницы (с единицы) и её размер.
type PaginationReq struct {
	PageNumber int
	PageSize   int
}

// PaginatedResult — страница данных и метаданные пагинации.
type PaginatedResult[T any] struct {
	Data        []T
	TotalCount  int
	CurrentPage int
	PageSize    int
	HasNext     bool
}

func NewPaginationReq(pageNumber, pageSize int) PaginationReq {
	return PaginationReq{PageNumber: pageNumber, PageSize: pageSize}
}

// NewPaginatedResult считает HasNext по общему числу записей до нарезки.
func NewPaginatedResult[T any](data []T, totalCount int, req PaginationReq) *PaginatedResult[T] {
	if data == nil {
		data = make([]T, 0)
	}

	return &PaginatedResult[T]{
		Data:        data,
		TotalCount:  totalCount,
		CurrentPage: req.PageNumber,
		PageSize:    req.PageSize,
		HasNext:     req.PageNumber*req.PageSize < totalCount,
	}
}
