package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// CreateProductCommandHandler handles product listing by sellers.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	logger     *slog.Logger
}

// NewCreateProductCommandHandler creates a handler for product listings.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, logger *slog.Logger) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_product_handler"),
	}
}

// Handle processes the listing and returns the created product.
//
// Failure modes: PermissionDeniedError when the caller's role cannot manage
// products.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.SellerRole().CanManageProducts() {
		return nil, errs.NewPermissionDeniedError("create product", cmd.SellerRole().String())
	}

	p, err := product.NewProduct(kernel.NewUUID(), cmd.SellerID(), cmd.Name(), cmd.Price(), cmd.Stock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "product listed",
		"product_id", p.ID().String(), "seller_id", p.SellerID().String())

	return p, nil
}
