package idsconfig

import "encoding/json"

// Claim is a single (type, value, value-type) triple attached to a seed
// user. ValueType is empty for plain string claims and ClaimValueTypeJSON
// for serialized structured values.
type Claim struct {
	Type      string
	Value     string
	ValueType string
}

// SeedUser is a predefined end-user account installed at bootstrap. The
// password is only ever used to derive a credential at creation time; after
// that the persisted account is authoritative.
type SeedUser struct {
	SubjectID string
	Username  string
	Email     string
	Password  string
	Claims    []Claim
}

// Address is the structured postal-address claim value. It is stored
// serialized with the json value type so consumers parse it instead of
// treating it as an opaque string.
type Address struct {
	StreetAddress string `json:"street_address"`
	Locality      string `json:"locality"`
	PostalCode    int    `json:"postal_code"`
	Country       string `json:"country"`
}

func addressClaim(address Address) Claim {
	value, _ := json.Marshal(address)
	return Claim{
		Type:      ClaimTypeAddress,
		Value:     string(value),
		ValueType: ClaimValueTypeJSON,
	}
}

func SeedUsers() []SeedUser {
	address := Address{
		StreetAddress: "Potenza Street",
		Locality:      "Indian",
		PostalCode:    395002,
		Country:       "India",
	}

	return []SeedUser{
		{
			SubjectID: "4b2f9a36-62d1-4f3b-9d0a-51e57c6f2a7e",
			Username:  "Potenza",
			Email:     "potenzatest@gmail.com",
			Password:  "Potenza@123",
			Claims: []Claim{
				{Type: ClaimTypeName, Value: "Potenza User"},
				{Type: ClaimTypeGivenName, Value: "Potenza"},
				{Type: ClaimTypeFamilyName, Value: "Potenza"},
				{Type: ClaimTypeRole, Value: "admin"},
				{Type: ClaimTypeWebsite, Value: "https://potenzagloblsolutions.com"},
				addressClaim(address),
			},
		},
		{
			SubjectID: "8c1de0a9-07c2-45c9-8f05-2b4f9d1c63b4",
			Username:  "Test",
			Email:     "testuser@gmail.com",
			Password:  "Potenza@123",
			Claims: []Claim{
				{Type: ClaimTypeName, Value: "Test User"},
				{Type: ClaimTypeGivenName, Value: "User"},
				{Type: ClaimTypeFamilyName, Value: "Test"},
				{Type: ClaimTypeWebsite, Value: "http://testuser.com"},
				addressClaim(address),
			},
		},
	}
}
