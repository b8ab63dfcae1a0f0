package dashboard

import (
	"context"
	"time"

	"github.com/legalpay/api-honorarios/internal/contrato"
	"github.com/legalpay/api-honorarios/internal/escritorio"
	"github.com/legalpay/api-honorarios/internal/honorario"
	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// Fonte é o recorte do store lido pelo dashboard.
type Fonte interface {
	ListarEscritorios(ctx context.Context, busca string) ([]escritorio.Escritorio, error)
	ListarContratos(ctx context.Context, busca string) ([]contrato.Contrato, error)
	ListarHonorarios(ctx context.Context, busca string) ([]honorario.Honorario, error)
	TotalPagoPorMoeda(ctx context.Context, moeda models.Moeda) (float64, error)
	Agora() time.Time
}

type TotalMoeda struct {
	Moeda          models.Moeda `json:"currency"`
	Total          float64      `json:"total"`
	TotalFormatado string       `json:"formattedTotal"`
	Quantidade     int          `json:"count"`
}

type Resumo struct {
	Escritorios    Contagem          `json:"lawFirms"`
	Contratos      Contagem          `json:"contracts"`
	Pagos          []TotalMoeda      `json:"paid"`
	PorStatus      []ContagemStatus  `json:"invoicesByStatus"`
	TopEscritorios []TotalEscritorio `json:"topLawFirms"`
	Pendentes      []Pendente        `json:"pendingInvoices"`
}

type Service struct {
	Fonte Fonte
}

func NewService(f Fonte) *Service {
	return &Service{Fonte: f}
}

// TotalPago delega ao store.
func (s *Service) TotalPago(ctx context.Context, moeda models.Moeda) (float64, error) {
	return s.Fonte.TotalPagoPorMoeda(ctx, moeda)
}

// Montar lê o store e calcula todos os indicadores.
func (s *Service) Montar(ctx context.Context) (*Resumo, error) {
	escritorios, err := s.Fonte.ListarEscritorios(ctx, "")
	if err != nil {
		return nil, err
	}
	contratos, err := s.Fonte.ListarContratos(ctx, "")
	if err != nil {
		return nil, err
	}
	hs, err := s.Fonte.ListarHonorarios(ctx, "")
	if err != nil {
		return nil, err
	}

	nomes := make(map[string]string, len(escritorios))
	for _, e := range escritorios {
		nomes[e.ID] = e.Nome
	}

	quantidades := QuantidadePagosPorMoeda(hs)
	pagos := make([]TotalMoeda, 0, len(models.Moedas))
	for _, m := range models.Moedas {
		total, err := s.TotalPago(ctx, m)
		if err != nil {
			return nil, err
		}
		pagos = append(pagos, TotalMoeda{
			Moeda:          m,
			Total:          total,
			TotalFormatado: utils.FormatarMoeda(total, string(m)),
			Quantidade:     quantidades[m],
		})
	}

	return &Resumo{
		Escritorios:    ContarEscritorios(escritorios),
		Contratos:      ContarContratos(contratos, s.Fonte.Agora()),
		Pagos:          pagos,
		PorStatus:      HistogramaStatus(hs),
		TopEscritorios: TopEscritoriosPagos(escritorios, hs, LimiteTop),
		Pendentes:      PendentesPorVencimento(hs, nomes),
	}, nil
}
