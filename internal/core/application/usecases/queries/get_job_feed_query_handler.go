package queries

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobFeedQueryHandler retrieves open delivery jobs from the database,
// enriched with product and seller display names.
//
// The job rows are always read live: claim state must never be stale. Only
// the seller display names may come from the cache, with a database fallback
// on miss or cache failure.
type GetJobFeedQueryHandler struct {
	db     *gorm.DB
	names  NameCache
	logger *slog.Logger
}

// NewGetJobFeedQueryHandler creates a handler for job feed queries.
// The cache may be nil, in which case names are always read from the join.
func NewGetJobFeedQueryHandler(db *gorm.DB, names NameCache, logger *slog.Logger) GetJobFeedQueryHandler {
	return GetJobFeedQueryHandler{
		db:     db,
		names:  names,
		logger: logger.With("component", "job_feed_query"),
	}
}

// Handle executes the query and returns open jobs, oldest first, so the
// longest-waiting orders surface at the top of the feed.
func (h GetJobFeedQueryHandler) Handle(ctx context.Context, query GetJobFeedQuery) ([]GetJobFeedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetJobFeedQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.seller_id,
			p.name,
			u.name,
			o.price,
			o.delivery_fee,
			o.created_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		JOIN users u ON u.id = o.seller_id
		WHERE o.status = ? AND o.rider_id IS NULL
		ORDER BY o.created_at
	`, int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var job GetJobFeedQueryResponse
		var id, rawBuyerID, sellerID uuid.UUID
		var productName, sellerName string
		var price, deliveryFee int64
		var createdAt time.Time

		err = rows.Scan(&id, &rawBuyerID, &sellerID, &productName, &sellerName, &price, &deliveryFee, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		buyerID, idErr := kernel.UUIDFromBytes(rawBuyerID[:])
		if idErr != nil {
			return nil, idErr
		}

		job.OrderID = orderID
		job.BuyerID = buyerID
		job.ProductName = productName
		job.SellerName = h.sellerName(ctx, sellerID.String(), sellerName)
		job.Price = price
		job.RiderPayout = deliveryFee
		job.CreatedAt = createdAt
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// sellerName serves the display name from the cache when present and
// back-fills the cache from the freshly joined value otherwise.
func (h GetJobFeedQueryHandler) sellerName(ctx context.Context, sellerID, joined string) string {
	if h.names == nil {
		return joined
	}

	key := "user:name:" + sellerID
	cached, ok, err := h.names.Get(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "name cache read failed", "key", key, "error", err)
		return joined
	}
	if ok {
		return cached
	}

	if err = h.names.Set(ctx, key, joined); err != nil {
		h.logger.WarnContext(ctx, "name cache write failed", "key", key, "error", err)
	}
	return joined
}
