package valueobject

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vendas/backend/internal/domain/shared"
)

// ContactKind identifies the channel a Contact represents
type ContactKind string

const (
	ContactKindPhone  ContactKind = "phone"  // landline, 10 digits
	ContactKindMobile ContactKind = "mobile" // 11 digits, third digit '9'
	ContactKindEmail  ContactKind = "email"
)

// String returns the string representation of ContactKind
func (k ContactKind) String() string {
	return string(k)
}

// IsValid checks if the kind is a known ContactKind
func (k ContactKind) IsValid() bool {
	switch k {
	case ContactKindPhone, ContactKindMobile, ContactKindEmail:
		return true
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact is one validated reachable channel for a customer.
// Phone and mobile values keep only their digits; emails are lower-cased.
type Contact struct {
	kind    ContactKind
	value   string
	primary bool
}

// NewContact creates a validated Contact of the given kind.
func NewContact(kind ContactKind, value string, primary bool) (Contact, error) {
	switch kind {
	case ContactKindPhone:
		digits := cleanDigits(value)
		if len(digits) != 10 {
			return Contact{}, shared.NewDomainError("INVALID_FORMAT", "Phone must have 10 digits (area code + 8 digits)")
		}
		return Contact{kind: kind, value: digits, primary: primary}, nil
	case ContactKindMobile:
		digits := cleanDigits(value)
		if len(digits) != 11 || digits[2] != '9' {
			return Contact{}, shared.NewDomainError("INVALID_FORMAT", "Mobile must have 11 digits with '9' after the area code")
		}
		return Contact{kind: kind, value: digits, primary: primary}, nil
	case ContactKindEmail:
		email := strings.ToLower(strings.TrimSpace(value))
		if !emailPattern.MatchString(email) {
			return Contact{}, shared.NewDomainError("INVALID_FORMAT", "Invalid email format")
		}
		return Contact{kind: kind, value: email, primary: primary}, nil
	default:
		return Contact{}, shared.NewDomainError("INVALID_FORMAT", "Contact kind must be 'phone', 'mobile' or 'email'")
	}
}

// NewPhoneContact creates a landline contact
func NewPhoneContact(value string, primary bool) (Contact, error) {
	return NewContact(ContactKindPhone, value, primary)
}

// NewMobileContact creates a mobile contact
func NewMobileContact(value string, primary bool) (Contact, error) {
	return NewContact(ContactKindMobile, value, primary)
}

// NewEmailContact creates an email contact
func NewEmailContact(value string, primary bool) (Contact, error) {
	return NewContact(ContactKindEmail, value, primary)
}

// Kind returns the contact channel kind
func (c Contact) Kind() ContactKind {
	return c.kind
}

// Value returns the normalized contact value
func (c Contact) Value() string {
	return c.value
}

// IsPrimary returns true if this is the primary contact of its kind
func (c Contact) IsPrimary() bool {
	return c.primary
}

// AsPrimary returns a copy flagged as primary
func (c Contact) AsPrimary() Contact {
	c.primary = true
	return c
}

// AsSecondary returns a copy with the primary flag cleared
func (c Contact) AsSecondary() Contact {
	c.primary = false
	return c
}

// Equals compares kind, value and primary flag
func (c Contact) Equals(other Contact) bool {
	return c.kind == other.kind && c.value == other.value && c.primary == other.primary
}

// Formatted returns the display form: (DD) DDDD-DDDD for phones,
// (DD) DDDDD-DDDD for mobiles, the address itself for emails.
func (c Contact) Formatted() string {
	switch c.kind {
	case ContactKindPhone:
		return fmt.Sprintf("(%s) %s-%s", c.value[0:2], c.value[2:6], c.value[6:10])
	case ContactKindMobile:
		return fmt.Sprintf("(%s) %s-%s", c.value[0:2], c.value[2:7], c.value[7:11])
	default:
		return c.value
	}
}

// String implements fmt.Stringer
func (c Contact) String() string {
	return fmt.Sprintf("%s: %s", c.kind, c.Formatted())
}
