// Package account holds the registration record collected at sign-up.
package account

import "strings"

// Profile is the registration record a user fills in on sign-up. Fields are
// not validated; the JSON names match what earlier clients stored.
type Profile struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	StreetAddress string `json:"streetAddress"`
	ZipCode       string `json:"zipCode"`
	State         string `json:"state"`
	City          string `json:"city"`
}

// DisplayName returns "First Last", or a placeholder when both are empty.
func (p Profile) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		return "First Name/Last Name"
	}
	return name
}

// Address joins the postal fields that are present.
func (p Profile) Address() string {
	var parts []string
	for _, s := range []string{p.StreetAddress, p.City, strings.TrimSpace(p.State + " " + p.ZipCode)} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
