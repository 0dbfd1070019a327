// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account as the backend reports it. The client never invents
// user data; every User held locally came out of a backend response.
type User struct {
	ID              string    `json:"id"`                         // Backend-assigned identifier (UUID string).
	Name            string    `json:"name"`                       // Display name.
	Email           string    `json:"email"`                      // Login identifier and OTP delivery address.
	Role            Role      `json:"role"`                       // "user" or "admin"; immutable from the client side.
	MobileNumber    string    `json:"mobile_number,omitempty"`    // Optional contact number.
	DeliveryAddress *Address  `json:"delivery_address,omitempty"` // Optional; required before an order can be placed.
	Verified        bool      `json:"verified"`                   // True once the registration OTP has been confirmed.
	CreatedAt       time.Time `json:"created_at"`                 // Timestamp of account creation.
}

// LoginRecord is one entry of the account's login audit trail.
type LoginRecord struct {
	ID        string    `json:"id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}
