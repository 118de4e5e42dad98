package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler handles buyer-initiated cancellation,
// the Pending -> Cancelled transition.
//
// Cancellation races against riders claiming the order. The update is
// conditioned on the Pending status, so whichever side commits first wins and
// the loser receives ConflictError.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
// The publisher may be nil when event publishing is disabled.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation and returns the cancelled order.
//
// Failure modes: PermissionDeniedError when the caller is neither the buyer
// who placed the order nor an admin, ObjectNotFoundError when the order does
// not exist, ConflictError when the order already left the Pending status.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.CallerRole() != user.RoleAdmin && !o.BuyerID().IsEqual(cmd.CallerID()) {
		return nil, errs.NewPermissionDeniedError("cancel order", "a buyer who did not place this order")
	}

	previousStatus := o.Status()
	if err = o.Cancel(); err != nil {
		return nil, errs.NewConflictError("order", o.ID().String(),
			"cannot cancel from status "+previousStatus.String())
	}

	if err = orderRepo.Update(ctx, o, previousStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishChanged(ctx, o)

	return o, nil
}

func (h CancelOrderCommandHandler) publishChanged(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	event := ports.NewOrderChangedEvent(o, time.Now().UTC())
	if err := h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", event.OrderID, "error", err)
	}
}
