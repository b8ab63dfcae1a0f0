package models

// Moeda dos contratos e honorários.
type Moeda string

const (
	BRL Moeda = "BRL"
	USD Moeda = "USD"
)

// Moedas lista as moedas aceitas, na ordem em que aparecem no dashboard.
var Moedas = []Moeda{BRL, USD}

func (m Moeda) Valida() bool {
	return m == BRL || m == USD
}

// OuPadrao devolve BRL quando a moeda não foi informada.
func (m Moeda) OuPadrao() Moeda {
	if m == "" {
		return BRL
	}
	return m
}
