package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ClaimJobCommandHandler handles the rider claim operation, the central
// correctness point of the job-assignment workflow.
//
// The claim is delegated to OrderRepository.Claim, which performs a single
// conditional update against the store: transition to InTransit and set the
// rider, only if the order is still Pending and unclaimed. Concurrent claims
// on the same order therefore yield exactly one winner; every loser receives
// a ConflictError, including the winner retrying its own claim.
type ClaimJobCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewClaimJobCommandHandler creates a handler for job claim operations.
// The publisher may be nil when event publishing is disabled.
func NewClaimJobCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "claim_job_handler"),
	}
}

// Handle processes the claim command and returns the claimed order.
//
// Failure modes: PermissionDeniedError when the caller's role may not claim
// jobs, ObjectNotFoundError when the order does not exist, ConflictError
// when the job is already claimed or no longer Pending.
func (h ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.RiderRole().CanClaimJobs() {
		return nil, errs.NewPermissionDeniedError("claim job", cmd.RiderRole().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.OrderRepository().Claim(ctx, cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishChanged(ctx, claimed)

	return claimed, nil
}

func (h ClaimJobCommandHandler) publishChanged(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	event := ports.NewOrderChangedEvent(o, time.Now().UTC())
	if err := h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", event.OrderID, "error", err)
	}
}
