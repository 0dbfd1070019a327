package api

import "shopmate/internal/domain/entity"

// The backend's address schema drifted between "postal_code" and "pincode"
// across endpoints. PostalCode is canonical inside the client; these wire
// types absorb both spellings at the boundary so neither leaks inward.

type wireAddress struct {
	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	Country     string `json:"country"`
}

func toWireAddress(a *entity.Address) *wireAddress {
	if a == nil {
		return nil
	}

	return &wireAddress{
		FullName:    a.FullName,
		PhoneNumber: a.PhoneNumber,
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Pincode:     a.PostalCode,
		Country:     a.Country,
	}
}

func (w *wireAddress) toEntity() *entity.Address {
	if w == nil {
		return nil
	}

	postal := w.PostalCode
	if postal == "" {
		postal = w.Pincode
	}

	return &entity.Address{
		FullName:    w.FullName,
		PhoneNumber: w.PhoneNumber,
		Street:      w.Street,
		City:        w.City,
		State:       w.State,
		PostalCode:  postal,
		Country:     w.Country,
	}
}

type wireUser struct {
	entity.User
	DeliveryAddress *wireAddress `json:"delivery_address,omitempty"`
}

func (w *wireUser) toEntity() *entity.User {
	user := w.User
	user.DeliveryAddress = w.DeliveryAddress.toEntity()

	return &user
}

func wireUsersToEntities(wires []*wireUser) []*entity.User {
	users := make([]*entity.User, len(wires))
	for i, w := range wires {
		users[i] = w.toEntity()
	}

	return users
}

type wireOrder struct {
	entity.Order
	DeliveryAddress *wireAddress `json:"delivery_address,omitempty"`
}

func (w *wireOrder) toEntity() *entity.Order {
	order := w.Order
	if addr := w.DeliveryAddress.toEntity(); addr != nil {
		order.DeliveryAddress = *addr
	}

	return &order
}

func wireOrdersToEntities(wires []*wireOrder) []*entity.Order {
	orders := make([]*entity.Order, len(wires))
	for i, w := range wires {
		orders[i] = w.toEntity()
	}

	return orders
}
