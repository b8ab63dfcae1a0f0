package utils

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// LayoutData é o formato das datas trafegadas na API (sem horário).
const LayoutData = "2006-01-02"

// ParseData converte "aaaa-mm-dd" em datatypes.Date.
func ParseData(s string) (datatypes.Date, error) {
	t, err := time.Parse(LayoutData, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return datatypes.Date(t), nil
}

// ParseDataOpcional trata nil como "não informado".
func ParseDataOpcional(s *string) (*datatypes.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := ParseData(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// NovaData monta uma data a partir de ano, mês e dia em UTC.
func NovaData(ano int, mes time.Month, dia int) datatypes.Date {
	return datatypes.Date(time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC))
}

// Hoje devolve a data corrente (UTC) sem horário.
func Hoje(agora time.Time) datatypes.Date {
	u := agora.UTC()
	return NovaData(u.Year(), u.Month(), u.Day())
}

// DataString formata a data no layout da API.
func DataString(d datatypes.Date) string {
	return time.Time(d).Format(LayoutData)
}
