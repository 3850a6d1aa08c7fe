package entity

// Geocode is the optional position the backend attaches to an address.
type Geocode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CompanyAddress is a structured billing/shipping address of a company account.
// It belongs to the logged-in user or, for sales agents, to the selected client.
type CompanyAddress struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`                   // Label shown in address pickers.
	AddressLine1       string   `json:"addressLine1"`
	AddressLine2       string   `json:"addressLine2,omitempty"`
	AddressLine3       string   `json:"addressLine3,omitempty"`
	AddressLine4       string   `json:"addressLine4,omitempty"`
	PostalCode         string   `json:"postalCode"`
	City               string   `json:"city"`
	CountryCode        string   `json:"countryCode"`            // ISO 3166-1 alpha-2.
	IsInvoicingAddress bool     `json:"isInvoicingAddress"`
	IsDeliveryAddress  bool     `json:"isDeliveryAddress"`
	IsDefaultAddress   bool     `json:"isDefaultAddress"`
	Geocode            *Geocode `json:"geocode,omitempty"`
}

// AddressScope selects whose addresses are addressed.
// A nil ClientID means the logged-in user's own addresses.
type AddressScope struct {
	ClientID *int64
}

// UserScope is the scope of the logged-in user's own addresses.
func UserScope() AddressScope {
	return AddressScope{}
}

// ClientScope is the scope of a client's addresses, used by sales agents.
func ClientScope(clientID int64) AddressScope {
	return AddressScope{ClientID: &clientID}
}

// IsClient reports whether the scope targets a client account.
func (s AddressScope) IsClient() bool {
	return s.ClientID != nil
}

// AddressBook is a list of addresses with the default-address rules.
type AddressBook []*CompanyAddress

// Find returns the address with the given id.
func (b AddressBook) Find(id int64) (*CompanyAddress, bool) {
	for _, a := range b {
		if a.ID == id {
			return a, true
		}
	}

	return nil, false
}

// Default returns the default address, if any.
func (b AddressBook) Default() (*CompanyAddress, bool) {
	for _, a := range b {
		if a.IsDefaultAddress {
			return a, true
		}
	}

	return nil, false
}

// HasOtherDefault reports whether an address other than exceptID is the default.
// Use exceptID 0 when creating a new address.
func (b AddressBook) HasOtherDefault(exceptID int64) bool {
	for _, a := range b {
		if a.IsDefaultAddress && a.ID != exceptID {
			return true
		}
	}

	return false
}

// AddressFormGates are the flags the address form may offer.
type AddressFormGates struct {
	CanMarkDefault  bool `json:"canMarkDefault"`
	CanSetInvoicing bool `json:"canSetInvoicing"`
	CanSetDelivery  bool `json:"canSetDelivery"`
}

// FormGates applies the default-address rules to the address being edited
// (editingID 0 for a new one): a default may be set only when no other address
// is default, and invoicing or delivery flags only once some address is default,
// counting the edited one when markDefault is set.
func (b AddressBook) FormGates(editingID int64, markDefault bool) AddressFormGates {
	otherDefault := b.HasOtherDefault(editingID)
	hasDefault := otherDefault || markDefault

	return AddressFormGates{
		CanMarkDefault:  !otherDefault,
		CanSetInvoicing: hasDefault,
		CanSetDelivery:  hasDefault,
	}
}
