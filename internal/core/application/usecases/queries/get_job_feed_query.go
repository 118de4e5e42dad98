package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetJobFeedQueryIsNotConstructed = errors.New(
		"GetJobFeedQuery must be created via NewGetJobFeedQuery constructor",
	)
)

// GetJobFeedQuery retrieves all open delivery jobs: Pending orders with no
// rider assigned. The feed is read live on every call so a rider never sees
// a job another rider already claimed and committed.
type GetJobFeedQuery struct {
	requesterRole user.Role

	guard guard.ConstructorGuard
}

// NewGetJobFeedQuery creates a query to retrieve the open job feed for a
// caller with the given role.
func NewGetJobFeedQuery(requesterRole user.Role) (GetJobFeedQuery, error) {
	if err := requesterRole.Validate(); err != nil {
		return GetJobFeedQuery{}, err
	}
	return GetJobFeedQuery{
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor and the
// caller is allowed to read the feed.
func (q GetJobFeedQuery) Validate() error {
	if err := q.guard.Validate(ErrGetJobFeedQueryIsNotConstructed); err != nil {
		return err
	}
	if !q.requesterRole.CanViewJobFeed() {
		return errs.NewPermissionDeniedError("view job feed", q.requesterRole.String())
	}
	return nil
}

// RequesterRole returns the caller's role.
func (q GetJobFeedQuery) RequesterRole() user.Role {
	return q.requesterRole
}

// GetJobFeedQueryResponse represents one open job as shown to riders:
// what to deliver, who sells it, who to deliver to, and what the job pays.
type GetJobFeedQueryResponse struct {
	OrderID     kernel.UUID
	BuyerID     kernel.UUID
	ProductName string
	SellerName  string
	Price       int64
	RiderPayout int64
	CreatedAt   time.Time
}
