// Package entity contains the core business objects of the project.
package entity

// Address is a delivery destination attached to a user profile.
// PostalCode is the canonical spelling; the API layer absorbs the backend's
// older "pincode" field so only one name exists inside the client.
type Address struct {
	FullName    string `json:"full_name,omitempty"`    // Recipient name, when it differs from the account name.
	PhoneNumber string `json:"phone_number,omitempty"` // Recipient phone, when it differs from the account number.
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

// Complete reports whether every field an order submission requires is set.
// Optional recipient overrides are not part of completeness.
func (a *Address) Complete() bool {
	if a == nil {
		return false
	}

	return a.Street != "" && a.City != "" && a.State != "" && a.PostalCode != "" && a.Country != ""
}
