// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and rider assignment are indexed because the job feed and the claim
// update both filter on them.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID     uuid.UUID  `gorm:"type:uuid;index"`
	SellerID    uuid.UUID  `gorm:"type:uuid;index"`
	ProductID   uuid.UUID  `gorm:"type:uuid"`
	RiderID     *uuid.UUID `gorm:"type:uuid;index"`
	Price       int64
	DeliveryFee int64
	Commission  int64
	TotalAmount int64
	Status      int `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := o.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		BuyerID:     o.BuyerID().Bytes(),
		SellerID:    o.SellerID().Bytes(),
		ProductID:   o.ProductID().Bytes(),
		RiderID:     riderID,
		Price:       o.Price(),
		DeliveryFee: o.DeliveryFee(),
		Commission:  o.Commission(),
		TotalAmount: o.TotalAmount(),
		Status:      int(o.Status()),
		CreatedAt:   o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the rider/status consistency invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	return order.RestoreOrder(
		id, buyerID, sellerID, productID,
		riderID,
		dto.Price, dto.DeliveryFee, dto.Commission, dto.TotalAmount,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
