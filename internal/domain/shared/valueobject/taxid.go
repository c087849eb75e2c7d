package valueobject

import (
	"fmt"
	"strings"

	"github.com/vendas/backend/internal/domain/shared"
)

// TaxIDType identifies the kind of Brazilian tax identifier
type TaxIDType string

const (
	TaxIDTypeCPF  TaxIDType = "cpf"  // individual, 11 digits
	TaxIDTypeCNPJ TaxIDType = "cnpj" // organization, 14 digits
)

// String returns the string representation of TaxIDType
func (t TaxIDType) String() string {
	return string(t)
}

// TaxID is a validated Brazilian tax identifier (CPF or CNPJ).
// The variant is selected by the cleaned digit count: 11 digits is a CPF,
// 14 digits is a CNPJ. Only the digits are stored.
type TaxID struct {
	kind   TaxIDType
	digits string
}

// NewTaxID creates a TaxID from raw input, stripping any punctuation.
// Fails with INVALID_FORMAT when the digit count matches neither variant
// or the check digits do not verify.
func NewTaxID(raw string) (TaxID, error) {
	digits := cleanDigits(raw)

	switch len(digits) {
	case 11:
		if !validCPF(digits) {
			return TaxID{}, shared.NewDomainError("INVALID_FORMAT", "Invalid CPF")
		}
		return TaxID{kind: TaxIDTypeCPF, digits: digits}, nil
	case 14:
		if !validCNPJ(digits) {
			return TaxID{}, shared.NewDomainError("INVALID_FORMAT", "Invalid CNPJ")
		}
		return TaxID{kind: TaxIDTypeCNPJ, digits: digits}, nil
	default:
		return TaxID{}, shared.NewDomainError("INVALID_FORMAT", "Tax ID must have 11 digits (CPF) or 14 digits (CNPJ)")
	}
}

// Type returns the tax ID variant
func (t TaxID) Type() TaxIDType {
	return t.kind
}

// Value returns the cleaned digits
func (t TaxID) Value() string {
	return t.digits
}

// IsCPF returns true for the individual variant
func (t TaxID) IsCPF() bool {
	return t.kind == TaxIDTypeCPF
}

// IsCNPJ returns true for the organization variant
func (t TaxID) IsCNPJ() bool {
	return t.kind == TaxIDTypeCNPJ
}

// IsZero returns true for the zero value (no digits)
func (t TaxID) IsZero() bool {
	return t.digits == ""
}

// Equals compares by variant and digits
func (t TaxID) Equals(other TaxID) bool {
	return t.kind == other.kind && t.digits == other.digits
}

// Formatted returns the display form: DDD.DDD.DDD-DD for CPF,
// DD.DDD.DDD/DDDD-DD for CNPJ.
func (t TaxID) Formatted() string {
	switch t.kind {
	case TaxIDTypeCPF:
		return fmt.Sprintf("%s.%s.%s-%s", t.digits[0:3], t.digits[3:6], t.digits[6:9], t.digits[9:11])
	case TaxIDTypeCNPJ:
		return fmt.Sprintf("%s.%s.%s/%s-%s", t.digits[0:2], t.digits[2:5], t.digits[5:8], t.digits[8:12], t.digits[12:14])
	default:
		return t.digits
	}
}

// String implements fmt.Stringer
func (t TaxID) String() string {
	return t.Formatted()
}

// cleanDigits strips every non-digit character
func cleanDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

// validCPF verifies the two mod-11 check digits of an 11-digit CPF.
// Sequences of a single repeated digit pass the arithmetic but are not
// valid identifiers, so they are rejected up front.
func validCPF(cpf string) bool {
	if allSameDigit(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digitAt(cpf, i) * (10 - i)
	}
	first := (sum * 10) % 11
	if first == 10 {
		first = 0
	}
	if first != digitAt(cpf, 9) {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digitAt(cpf, i) * (11 - i)
	}
	second := (sum * 10) % 11
	if second == 10 {
		second = 0
	}
	return second == digitAt(cpf, 10)
}

// validCNPJ verifies the two mod-11 check digits of a 14-digit CNPJ
// using the cyclic weight sequences 5..2,9..2 and 6..2,9..2.
func validCNPJ(cnpj string) bool {
	if allSameDigit(cnpj) {
		return false
	}

	sum := 0
	pos := 5
	for i := 0; i < 12; i++ {
		sum += digitAt(cnpj, i) * pos
		if pos == 2 {
			pos = 9
		} else {
			pos--
		}
	}
	digit := 0
	if sum%11 >= 2 {
		digit = 11 - sum%11
	}
	if digit != digitAt(cnpj, 12) {
		return false
	}

	sum = 0
	pos = 6
	for i := 0; i < 13; i++ {
		sum += digitAt(cnpj, i) * pos
		if pos == 2 {
			pos = 9
		} else {
			pos--
		}
	}
	digit = 0
	if sum%11 >= 2 {
		digit = 11 - sum%11
	}
	return digit == digitAt(cnpj, 13)
}
