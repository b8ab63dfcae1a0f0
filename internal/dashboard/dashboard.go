// Package dashboard monta os indicadores do painel a partir do conteúdo atual
// do store. Nada é memorizado: cada chamada recalcula tudo.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/legalpay/api-honorarios/internal/contrato"
	"github.com/legalpay/api-honorarios/internal/escritorio"
	"github.com/legalpay/api-honorarios/internal/honorario"
	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// LimiteTop é quantos escritórios entram no gráfico de pagamentos.
const LimiteTop = 5

type ContagemStatus struct {
	Status     honorario.Status `json:"status"`
	Quantidade int              `json:"count"`
}

type TotalEscritorio struct {
	EscritorioID string       `json:"lawFirmId"`
	Nome         string       `json:"name"`
	Rotulo       string       `json:"label"`
	Moeda        models.Moeda `json:"currency"`
	Valor        float64      `json:"value"`
}

type Pendente struct {
	honorario.Honorario
	NomeEscritorio string `json:"lawFirmName,omitempty"`
	ValorFormatado string `json:"formattedValue"`
	Vencimento     string `json:"formattedDueDate"`
}

// HistogramaStatus conta os honorários por status, sempre nas três faixas
// e na ordem pendente, em análise, pago.
func HistogramaStatus(hs []honorario.Honorario) []ContagemStatus {
	out := make([]ContagemStatus, len(honorario.Statuses))
	idx := make(map[honorario.Status]int, len(honorario.Statuses))
	for i, s := range honorario.Statuses {
		out[i] = ContagemStatus{Status: s}
		idx[s] = i
	}
	for _, h := range hs {
		if i, ok := idx[h.Status]; ok {
			out[i].Quantidade++
		}
	}
	return out
}

// TopEscritoriosPagos soma os honorários pagos de cada escritório ativo,
// separando por moeda, e devolve os maiores em ordem decrescente.
// Escritório ativo sem nada pago aparece com uma entrada BRL zerada.
func TopEscritoriosPagos(escritorios []escritorio.Escritorio, hs []honorario.Honorario, limite int) []TotalEscritorio {
	pagos := make(map[string]map[models.Moeda]float64)
	for _, h := range hs {
		if !h.Pago() {
			continue
		}
		if pagos[h.EscritorioID] == nil {
			pagos[h.EscritorioID] = make(map[models.Moeda]float64)
		}
		pagos[h.EscritorioID][h.Moeda.OuPadrao()] += h.Valor
	}

	var out []TotalEscritorio
	for _, e := range escritorios {
		if !e.Ativo() {
			continue
		}
		n := 0
		for _, m := range models.Moedas {
			v := pagos[e.ID][m]
			if v == 0 {
				continue
			}
			out = append(out, novoTotal(e, m, v))
			n++
		}
		if n == 0 {
			out = append(out, novoTotal(e, models.BRL, 0))
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Valor > out[j].Valor })
	if limite >= 0 && len(out) > limite {
		out = out[:limite]
	}
	return out
}

func novoTotal(e escritorio.Escritorio, m models.Moeda, v float64) TotalEscritorio {
	return TotalEscritorio{
		EscritorioID: e.ID,
		Nome:         e.Nome,
		Rotulo:       primeiraPalavra(e.Nome),
		Moeda:        m,
		Valor:        v,
	}
}

func primeiraPalavra(nome string) string {
	if campos := strings.Fields(nome); len(campos) > 0 {
		return campos[0]
	}
	return ""
}

// PendentesPorVencimento lista os pendentes do vencimento mais próximo ao mais
// distante. Empates mantêm a ordem de cadastro.
func PendentesPorVencimento(hs []honorario.Honorario, nomes map[string]string) []Pendente {
	out := make([]Pendente, 0, len(hs))
	for _, h := range hs {
		if h.Status != honorario.StatusPendente {
			continue
		}
		out = append(out, Pendente{
			Honorario:      h,
			NomeEscritorio: nomes[h.EscritorioID],
			ValorFormatado: utils.FormatarMoeda(h.Valor, string(h.Moeda.OuPadrao())),
			Vencimento:     utils.FormatarData(time.Time(h.DataVencimento)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return time.Time(out[i].DataVencimento).Before(time.Time(out[j].DataVencimento))
	})
	return out
}

type Contagem struct {
	Ativos int `json:"active"`
	Total  int `json:"total"`
}

// ContarEscritorios devolve ativos e total.
func ContarEscritorios(escritorios []escritorio.Escritorio) Contagem {
	c := Contagem{Total: len(escritorios)}
	for _, e := range escritorios {
		if e.Ativo() {
			c.Ativos++
		}
	}
	return c
}

// ContarContratos considera ativo o contrato cuja data de fim não passou.
func ContarContratos(contratos []contrato.Contrato, agora time.Time) Contagem {
	c := Contagem{Total: len(contratos)}
	for _, ct := range contratos {
		if ct.Vigente(agora) {
			c.Ativos++
		}
	}
	return c
}

// QuantidadePagosPorMoeda conta as faturas pagas em cada moeda.
func QuantidadePagosPorMoeda(hs []honorario.Honorario) map[models.Moeda]int {
	out := make(map[models.Moeda]int, len(models.Moedas))
	for _, h := range hs {
		if h.Pago() {
			out[h.Moeda.OuPadrao()]++
		}
	}
	return out
}
