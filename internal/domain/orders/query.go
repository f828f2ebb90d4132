package orders

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OrderQuery filters and pages the admin order list
type OrderQuery struct {
	Status    string `validate:"omitempty,oneof=PENDING PROCESSING COMPLETED CANCELLED"`
	UserID    string `validate:"omitempty,uuid4"`
	Limit     int    `validate:"omitempty,min=1,max=200"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created date_time_updated amount status"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewOrderQuery returns a query for the newest orders first
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{
		Limit:     50,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating OrderQuery struct
func (q *OrderQuery) Validate() error {
	if err := validator.New().Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
