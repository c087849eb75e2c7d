package valueobject

import (
	"fmt"
	"strings"

	"github.com/vendas/backend/internal/domain/shared"
)

// validStates holds the 27 valid Brazilian state codes
var validStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// Address is a validated Brazilian postal address.
// The postal code (CEP) keeps only its 8 digits; the state code is
// uppercased and must be one of the 27 valid codes.
type Address struct {
	postalCode string
	street     string
	number     string
	complement *string
	district   string
	city       string
	state      string
}

// NewAddress creates a validated Address. Complement is optional and
// normalized to nil when blank.
func NewAddress(postalCode, street, number, complement, district, city, state string) (Address, error) {
	cep := cleanDigits(postalCode)
	if len(cep) != 8 {
		return Address{}, shared.NewDomainError("INVALID_FORMAT", "Postal code must have 8 digits")
	}
	if strings.TrimSpace(street) == "" {
		return Address{}, shared.NewDomainError("INVALID_ARGUMENT", "Street is required")
	}
	if strings.TrimSpace(number) == "" {
		return Address{}, shared.NewDomainError("INVALID_ARGUMENT", "Number is required")
	}
	if strings.TrimSpace(district) == "" {
		return Address{}, shared.NewDomainError("INVALID_ARGUMENT", "District is required")
	}
	if strings.TrimSpace(city) == "" {
		return Address{}, shared.NewDomainError("INVALID_ARGUMENT", "City is required")
	}

	uf := strings.ToUpper(strings.TrimSpace(state))
	if _, ok := validStates[uf]; !ok {
		return Address{}, shared.NewDomainError("INVALID_FORMAT", "Invalid state code")
	}

	addr := Address{
		postalCode: cep,
		street:     strings.TrimSpace(street),
		number:     strings.TrimSpace(number),
		district:   strings.TrimSpace(district),
		city:       strings.TrimSpace(city),
		state:      uf,
	}
	if trimmed := strings.TrimSpace(complement); trimmed != "" {
		addr.complement = &trimmed
	}
	return addr, nil
}

// PostalCode returns the 8-digit postal code
func (a Address) PostalCode() string { return a.postalCode }

// Street returns the street name
func (a Address) Street() string { return a.street }

// Number returns the street number
func (a Address) Number() string { return a.number }

// Complement returns the optional complement, nil when absent
func (a Address) Complement() *string { return a.complement }

// District returns the district/neighborhood
func (a Address) District() string { return a.district }

// City returns the city name
func (a Address) City() string { return a.city }

// State returns the 2-letter state code
func (a Address) State() string { return a.state }

// IsZero returns true for the zero value
func (a Address) IsZero() bool {
	return a.postalCode == ""
}

// Equals compares all fields structurally
func (a Address) Equals(other Address) bool {
	if a.postalCode != other.postalCode ||
		a.street != other.street ||
		a.number != other.number ||
		a.district != other.district ||
		a.city != other.city ||
		a.state != other.state {
		return false
	}
	if a.complement == nil || other.complement == nil {
		return a.complement == other.complement
	}
	return *a.complement == *other.complement
}

// FormattedPostalCode returns the CEP in DDDDD-DDD form
func (a Address) FormattedPostalCode() string {
	return fmt.Sprintf("%s-%s", a.postalCode[0:5], a.postalCode[5:8])
}

// FullAddress returns the single-line display form
func (a Address) FullAddress() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s", a.street, a.number)
	if a.complement != nil {
		fmt.Fprintf(&b, " - %s", *a.complement)
	}
	fmt.Fprintf(&b, ", %s, %s - %s, %s", a.district, a.city, a.state, a.FormattedPostalCode())
	return b.String()
}

// String implements fmt.Stringer
func (a Address) String() string {
	return a.FullAddress()
}
