package grpc

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/proto"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CatalogService struct {
	proto.UnimplementedCatalogServiceServer
	catUC  usecase.CategoryUC
	prUC   usecase.ProductUC
	logger logger.Logger
}

func NewCatalogService(catUC usecase.CategoryUC, prUC usecase.ProductUC, logger logger.Logger) *CatalogService {
	return &CatalogService{catUC: catUC, prUC: prUC, logger: logger}
}

func (g *CatalogService) GetProduct(ctx context.Context, req *proto.GetProductRequest) (*proto.Product, error) {
	const op = "grpc.GetProduct"

	id, err := parseID(req.GetId(), "id")
	if err != nil {
		return nil, g.fail(op, err)
	}

	product, err := g.prUC.GetByID(ctx, id)
	if err != nil {
		return nil, g.fail(op, err)
	}
	if product == nil {
		return nil, g.fail(op, e.ErrProductNotFound)
	}

	return toProduct(product), nil
}

func (g *CatalogService) ListProducts(ctx context.Context, req *proto.ListProductsRequest) (*proto.ListProductsResponse, error) {
	const op = "grpc.ListProducts"

	page, err := pagination(req.Page, req.PageSize)
	if err != nil {
		return nil, g.fail(op, err)
	}

	res, err := g.prUC.GetAll(ctx, page)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return &proto.ListProductsResponse{
		Data:        toProducts(res.Data),
		TotalCount:  int32(res.TotalCount),
		CurrentPage: int32(res.CurrentPage),
		PageSize:    int32(res.PageSize),
		HasNext:     res.HasNext,
	}, nil
}

func (g *CatalogService) SearchProducts(ctx context.Context, req *proto.SearchProductsRequest) (*proto.SearchProductsResponse, error) {
	const op = "grpc.SearchProducts"

	filter, err := productFilter(req)
	if err != nil {
		return nil, g.fail(op, err)
	}

	products, err := g.prUC.GetByFilters(ctx, filter)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return &proto.SearchProductsResponse{Products: toProducts(products)}, nil
}

func (g *CatalogService) GetCategory(ctx context.Context, req *proto.GetCategoryRequest) (*proto.Category, error) {
	const op = "grpc.GetCategory"

	id, err := parseID(req.GetId(), "id")
	if err != nil {
		return nil, g.fail(op, err)
	}

	category, err := g.catUC.GetByID(ctx, id)
	if err != nil {
		return nil, g.fail(op, err)
	}
	if category == nil {
		return nil, g.fail(op, e.ErrCategoryNotFound)
	}

	return toCategory(category), nil
}

func (g *CatalogService) ListCategories(ctx context.Context, req *proto.ListCategoriesRequest) (*proto.ListCategoriesResponse, error) {
	const op = "grpc.ListCategories"

	page, err := pagination(req.Page, req.PageSize)
	if err != nil {
		return nil, g.fail(op, err)
	}

	res, err := g.catUC.GetAll(ctx, page)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return &proto.ListCategoriesResponse{
		Data:        toCategories(res.Data),
		TotalCount:  int32(res.TotalCount),
		CurrentPage: int32(res.CurrentPage),
		PageSize:    int32(res.PageSize),
		HasNext:     res.HasNext,
	}, nil
}

func (g *CatalogService) fail(op string, err error) error {
	resp := GRPCErrorResponse(err)
	if st, ok := status.FromError(resp); ok && st.Code() == codes.Internal {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
	} else {
		g.logger.Warnf("%s: %v", op, err)
	}

	return resp
}
