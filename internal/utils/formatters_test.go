package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatarMoeda(t *testing.T) {
	cases := []struct {
		valor float64
		moeda string
		want  string
	}{
		{1234.56, "BRL", "R$ 1.234,56"},
		{0, "BRL", "R$ 0,00"},
		{1234.56, "USD", "$1,234.56"},
		{99.5, "USD", "$99.50"},
		{-10, "BRL", "-R$ 10,00"},
		{10, "", "R$ 10,00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatarMoeda(tc.valor, tc.moeda), "%v %s", tc.valor, tc.moeda)
	}
}

func TestFormatarData(t *testing.T) {
	d := time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatarData(d))
}

func TestFormatarDocumento(t *testing.T) {
	assert.Equal(t, "123.456.789-01", FormatarDocumento("12345678901"))
	assert.Equal(t, "12.345.678/0001-90", FormatarDocumento("12345678000190"))
	assert.Equal(t, "12.345.678/0001-90", FormatarDocumento("12.345.678/0001-90"))
	assert.Equal(t, "123", FormatarDocumento("123"))
}

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "12345678901", SomenteDigitos("123.456.789-01"))
	assert.Equal(t, "", SomenteDigitos("abc"))
}
