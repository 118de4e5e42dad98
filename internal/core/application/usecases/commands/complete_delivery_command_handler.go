package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler handles delivery confirmation,
// the InTransit -> Delivered transition.
//
// The update is conditioned on the status the transition started from, so a
// concurrent duplicate confirmation fails with ConflictError instead of
// silently rewriting the row. Completion also books the payouts: the seller
// wallet is credited with the net payout and the rider wallet with the
// delivery fee, in the same transaction as the status change.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUserUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery confirmations.
// The publisher may be nil when event publishing is disabled.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUserUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "complete_delivery_handler"),
	}
}

// Handle processes the delivery confirmation and returns the delivered order.
//
// Failure modes: PermissionDeniedError when the caller is neither the
// assigned rider nor an admin, ObjectNotFoundError when the order does not
// exist, ConflictError when the order is not InTransit.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.CallerRole().CanClaimJobs() {
		return nil, errs.NewPermissionDeniedError("complete delivery", cmd.CallerRole().String())
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

	if cmd.CallerRole() != user.RoleAdmin {
		if o.Rider() == nil || !o.Rider().IsEqual(cmd.CallerID()) {
			return nil, errs.NewPermissionDeniedError("complete delivery", "a rider not assigned to this order")
		}
	}

	previousStatus := o.Status()
	if err = o.Complete(); err != nil {
		return nil, errs.NewConflictError("order", o.ID().String(),
			"cannot complete from status "+previousStatus.String())
	}

	if err = orderRepo.Update(ctx, o, previousStatus); err != nil {
		return nil, err
	}

	if err = h.bookPayouts(ctx, uow, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishChanged(ctx, o)

	return o, nil
}

// bookPayouts credits the seller's net payout and the rider's delivery fee.
// Runs inside the completion transaction; a failed credit rolls back the
// status change too.
func (h CompleteDeliveryCommandHandler) bookPayouts(ctx context.Context, uow OrderUserUoW, o *order.Order) error {
	userRepo := uow.UserRepository()

	if payout := o.NetSellerPayout(); payout > 0 {
		if err := creditWallet(ctx, userRepo, o.SellerID(), payout); err != nil {
			return err
		}
	}

	if rider := o.Rider(); rider != nil {
		if payout := o.RiderPayout(); payout > 0 {
			if err := creditWallet(ctx, userRepo, *rider, payout); err != nil {
				return err
			}
		}
	}

	return nil
}

func creditWallet(ctx context.Context, userRepo ports.UserRepository, id kernel.UUID, amount int64) error {
	account, err := userRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = account.Credit(amount); err != nil {
		return err
	}
	return userRepo.Update(ctx, account)
}

func (h CompleteDeliveryCommandHandler) publishChanged(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	event := ports.NewOrderChangedEvent(o, time.Now().UTC())
	if err := h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", event.OrderID, "error", err)
	}
}
