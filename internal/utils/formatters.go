package utils

import (
	"regexp"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	naoDigito = regexp.MustCompile(`\D`)

	impressoraBR = message.NewPrinter(language.BrazilianPortuguese)
	impressoraUS = message.NewPrinter(language.AmericanEnglish)
)

// FormatarMoeda formata o valor para exibição: USD no padrão en-US ($1,234.56),
// qualquer outra moeda como BRL no padrão pt-BR (R$ 1.234,56).
func FormatarMoeda(valor float64, moeda string) string {
	if moeda == "USD" {
		if valor < 0 {
			return "-$" + impressoraUS.Sprintf("%.2f", -valor)
		}
		return "$" + impressoraUS.Sprintf("%.2f", valor)
	}
	if valor < 0 {
		return "-R$ " + impressoraBR.Sprintf("%.2f", -valor)
	}
	return "R$ " + impressoraBR.Sprintf("%.2f", valor)
}

// FormatarData devolve a data em dd/mm/aaaa.
func FormatarData(t time.Time) string {
	return t.Format("02/01/2006")
}

// SomenteDigitos remove tudo que não for dígito (forma canônica de CPF/CNPJ).
func SomenteDigitos(s string) string {
	return naoDigito.ReplaceAllString(s, "")
}

// FormatarDocumento aplica a máscara de CPF (11 dígitos) ou CNPJ (14 dígitos).
// Qualquer outro tamanho volta sem alteração.
func FormatarDocumento(doc string) string {
	d := SomenteDigitos(doc)
	switch len(d) {
	case 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case 14:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	}
	return doc
}
