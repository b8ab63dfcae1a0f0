package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/contrato"
	"github.com/legalpay/api-honorarios/internal/honorario"
	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// CriarHonorario cadastra o honorário com ID novo e data de criação de hoje.
func (s *Store) CriarHonorario(ctx context.Context, req honorario.CreateRequest) (*honorario.Honorario, error) {
	h, err := req.Novo()
	if err != nil {
		return nil, err
	}
	h.DataCriacao = utils.Hoje(s.agora())

	s.mu.Lock()
	err = s.Honorarios.Criar(ctx, h)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("criar honorário: %w", err)
	}

	s.notificar(ctx, "honorario", "criar", h.ID,
		"Fatura adicionada", "A fatura foi adicionada com sucesso.")
	return h, nil
}

func (s *Store) AtualizarHonorario(ctx context.Context, id string, req honorario.UpdateRequest) error {
	campos, err := req.Campos()
	if err != nil {
		return err
	}

	s.mu.Lock()
	ok, err := s.Honorarios.Atualizar(ctx, id, campos)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("atualizar honorário %s: %w", id, err)
	}
	if !ok {
		s.log.Debug("honorário inexistente, atualização ignorada", zap.String("id", id))
		return nil
	}

	s.notificar(ctx, "honorario", "atualizar", id,
		"Fatura atualizada", "Os dados da fatura foram atualizados com sucesso.")
	return nil
}

func (s *Store) BuscarHonorario(ctx context.Context, id string) (*honorario.Honorario, error) {
	return s.Honorarios.BuscarPorID(ctx, id)
}

func (s *Store) HonorariosPorEscritorio(ctx context.Context, escritorioID string) ([]honorario.Honorario, error) {
	return s.Honorarios.ListarPorEscritorio(ctx, escritorioID)
}

func (s *Store) HonorariosPorContrato(ctx context.Context, contratoID string) ([]honorario.Honorario, error) {
	return s.Honorarios.ListarPorContrato(ctx, contratoID)
}

// ListarHonorarios filtra pelo nome do escritório, número do processo,
// tipo de serviço do contrato ou status.
func (s *Store) ListarHonorarios(ctx context.Context, busca string) ([]honorario.Honorario, error) {
	list, err := s.Honorarios.ListarTodos(ctx)
	if err != nil || busca == "" {
		return list, err
	}
	nomes, err := s.nomesEscritorios(ctx)
	if err != nil {
		return nil, err
	}
	contratos, err := s.Contratos.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	tipos := make(map[string]contrato.TipoServico, len(contratos))
	for _, c := range contratos {
		tipos[c.ID] = c.TipoServico
	}

	out := make([]honorario.Honorario, 0, len(list))
	for _, h := range list {
		if contem(busca, nomes[h.EscritorioID], h.NumeroProcesso, string(tipos[h.ContratoID]), string(h.Status)) {
			out = append(out, h)
		}
	}
	return out, nil
}

// TotalPagoPorMoeda soma os honorários pagos na moeda. Recalculado a cada chamada.
func (s *Store) TotalPagoPorMoeda(ctx context.Context, moeda models.Moeda) (float64, error) {
	return s.Honorarios.SomarPagosPorMoeda(ctx, moeda)
}
