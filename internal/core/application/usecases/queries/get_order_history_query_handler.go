package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves a user's order history from the
// database, most recent first.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. The role decides which side of the order the
// user is matched on; admins get the full ledger.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := historyFilter(query)

	orders := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			p.name,
			o.rider_id,
			o.price,
			o.delivery_fee,
			o.commission,
			o.total_amount,
			o.status,
			o.created_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		`+where+`
		ORDER BY o.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderHistoryQueryResponse
		var id uuid.UUID
		var riderID *uuid.UUID
		var productName string
		var price, deliveryFee, commission, totalAmount int64
		var status int
		var createdAt time.Time

		err = rows.Scan(&id, &productName, &riderID, &price, &deliveryFee,
			&commission, &totalAmount, &status, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID

		if riderID != nil {
			rID, riderErr := kernel.UUIDFromBytes((*riderID)[:])
			if riderErr != nil {
				return nil, riderErr
			}
			resp.RiderID = &rID
		}

		resp.ProductName = productName
		resp.Status = order.Status(status).String()
		resp.Price = price
		resp.DeliveryFee = deliveryFee
		resp.Commission = commission
		resp.TotalAmount = totalAmount
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// historyFilter maps the caller's role to the order column it is matched on.
func historyFilter(query GetOrderHistoryQuery) (string, []any) {
	id := query.UserID().Bytes()

	switch query.Role() {
	case user.RoleBuyer:
		return "WHERE o.buyer_id = ?", []any{id}
	case user.RoleSeller:
		return "WHERE o.seller_id = ?", []any{id}
	case user.RoleRider:
		return "WHERE o.rider_id = ?", []any{id}
	case user.RoleAdmin:
		return "", nil
	case user.RoleUnknown:
		fallthrough
	default:
		// Validate() has already rejected these; match nothing.
		return "WHERE 1 = 0", nil
	}
}
