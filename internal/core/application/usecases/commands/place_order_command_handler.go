package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// PlaceOrderResult is the receipt returned to the caller after a successful
// order placement. Amounts are in minor currency units.
type PlaceOrderResult struct {
	Order           *order.Order
	Commission      int64
	NetSellerPayout int64
}

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// It resolves the authoritative price and seller from the product record,
// quotes commission and totals through the pricing policy, and decrements
// stock atomically with the order insert: the conditional stock update and
// the insert run in one transaction, so both succeed or both fail and
// overselling is impossible.
type PlaceOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
	pricing    services.PricingPolicy
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The publisher may be nil when event publishing is disabled.
func NewPlaceOrderCommandHandler(
	uowFactory OrderProductUoWFactory,
	pricing services.PricingPolicy,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		publisher:  publisher,
		logger:     logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command.
//
// Failure modes: ObjectNotFoundError when the product is missing,
// OutOfStockError when stock is insufficient, validation errors for
// malformed input. On success the new Pending order is returned together
// with the commission receipt.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	quote, err := h.pricing.Quote(p.Price(), cmd.DeliveryFee())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = productRepo.DecrementStock(ctx, p.ID(), 1); err != nil {
		return PlaceOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.BuyerID(),
		p.SellerID(),
		p.ID(),
		quote.Price,
		quote.DeliveryFee,
		quote.Commission,
		time.Now().UTC(),
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	h.publishChanged(ctx, newOrder)

	return PlaceOrderResult{
		Order:           newOrder,
		Commission:      quote.Commission,
		NetSellerPayout: quote.NetSellerPayout,
	}, nil
}

func (h PlaceOrderCommandHandler) publishChanged(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	event := ports.NewOrderChangedEvent(o, time.Now().UTC())
	if err := h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", event.OrderID, "error", err)
	}
}
