package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxID_CPF(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid bare digits",
			input: "45502905870",
		},
		{
			name:  "valid punctuated",
			input: "455.029.058-70",
		},
		{
			name:    "wrong first check digit",
			input:   "45502905810",
			wantErr: true,
		},
		{
			name:    "wrong second check digit",
			input:   "45502905871",
			wantErr: true,
		},
		{
			name:    "all identical digits",
			input:   "11111111111",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "4550290587",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxID, err := NewTaxID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, taxID.IsCPF())
			assert.False(t, taxID.IsCNPJ())
			assert.Equal(t, TaxIDTypeCPF, taxID.Type())
			assert.Equal(t, "45502905870", taxID.Value())
		})
	}
}

func TestNewTaxID_CNPJ(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid bare digits",
			input: "11222333000181",
		},
		{
			name:  "valid punctuated",
			input: "11.222.333/0001-81",
		},
		{
			name:    "wrong check digit",
			input:   "11222333000182",
			wantErr: true,
		},
		{
			name:    "all identical digits",
			input:   "11111111111111",
			wantErr: true,
		},
		{
			name:    "thirteen digits",
			input:   "1122233300018",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxID, err := NewTaxID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, taxID.IsCNPJ())
			assert.Equal(t, TaxIDTypeCNPJ, taxID.Type())
			assert.Equal(t, "11222333000181", taxID.Value())
		})
	}
}

func TestTaxID_Equals(t *testing.T) {
	bare, err := NewTaxID("45502905870")
	require.NoError(t, err)
	punctuated, err := NewTaxID("455.029.058-70")
	require.NoError(t, err)
	cnpj, err := NewTaxID("11222333000181")
	require.NoError(t, err)

	assert.True(t, bare.Equals(punctuated), "same digits should compare equal regardless of input punctuation")
	assert.False(t, bare.Equals(cnpj))
}

func TestTaxID_Formatted(t *testing.T) {
	cpf, err := NewTaxID("45502905870")
	require.NoError(t, err)
	assert.Equal(t, "455.029.058-70", cpf.Formatted())
	assert.Equal(t, "455.029.058-70", cpf.String())

	cnpj, err := NewTaxID("11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", cnpj.Formatted())
}

func TestTaxID_IsZero(t *testing.T) {
	var zero TaxID
	assert.True(t, zero.IsZero())

	taxID, err := NewTaxID("45502905870")
	require.NoError(t, err)
	assert.False(t, taxID.IsZero())
}
