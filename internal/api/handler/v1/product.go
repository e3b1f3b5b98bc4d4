package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/clubverd/pos-api/internal/api/handler/v1/request"
	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	ListProducts(ctx context.Context, category domain.Category) ([]domain.Product, error)
	LowStockProducts(ctx context.Context) ([]domain.Product, error)
}

type ProductHandler struct {
	svc CatalogService
}

func NewProductHandler(svc CatalogService) *ProductHandler {
	return &ProductHandler{
		svc: svc,
	}
}

// HandleListProducts godoc
// @Summary      List products, optionally filtered by category
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Flower, Extract, Edible, Accessory or Drink"
// @Success      200  {object}  []response.ProductResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapViewCatalog); !ok {
		return
	}

	category := domain.Category(ctx.Query("category"))

	products, err := h.svc.ListProducts(ctx.Request.Context(), category)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidCategory))

			return
		}

		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewProducts(products))
}

// HandleGetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        productID   path      int  true  "product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /products/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapViewCatalog); !ok {
		return
	}

	productID, ok := h.productIDFromPath(ctx)
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))

			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewProduct(product))
}

// HandleCreateProduct godoc
// @Summary      Add a product to the catalog
// @Tags         products
// @Produce      json
// @Param        request   body      request.ProductRequest true "request body"
// @Success      201  {object}  response.ProductResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapEditInventory); !ok {
		return
	}

	req := request.ProductRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	product, err := h.svc.CreateProduct(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateProduct -> h.svc.CreateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewProduct(product))
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Produce      json
// @Param        productID   path      int  true  "product ID"
// @Param        request     body      request.ProductRequest true "request body"
// @Success      200  {object}  response.ProductResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /products/{productID} [put]
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapEditInventory); !ok {
		return
	}

	productID, ok := h.productIDFromPath(ctx)
	if !ok {
		return
	}

	req := request.ProductRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	product := req.ToDomain()
	product.ID = productID

	updated, err := h.svc.UpdateProduct(ctx.Request.Context(), product)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewProduct(updated))
}

// HandleLowStockProducts godoc
// @Summary      List products at or below the restock threshold
// @Tags         products
// @Produce      json
// @Success      200  {object}  []response.ProductResponse
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /products/low-stock [get]
func (h *ProductHandler) HandleLowStockProducts(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapEditInventory); !ok {
		return
	}

	products, err := h.svc.LowStockProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleLowStockProducts -> h.svc.LowStockProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewProducts(products))
}

func (h *ProductHandler) productIDFromPath(ctx *gin.Context) (uint, bool) {
	rawID := ctx.Param("productID")

	productID := cast.ToUint(rawID)
	if productID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid product ID %q", rawID)))

		return 0, false
	}

	return productID, true
}
