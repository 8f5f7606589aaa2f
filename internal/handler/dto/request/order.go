package request

import (
	"takeout-api/internal/domain/order"
)

type PlaceOrderRequest struct {
	ContactName  string `json:"contact_name" binding:"required,max=100"`
	ContactPhone string `json:"contact_phone" binding:"required,max=20"`
	ContactEmail string `json:"contact_email,omitempty" binding:"omitempty,email"`
}

func (r PlaceOrderRequest) ToDomain() (order.Contact, error) {
	return order.NewContact(r.ContactName, r.ContactPhone, r.ContactEmail)
}
