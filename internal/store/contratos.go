package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/contrato"
)

func (s *Store) CriarContrato(ctx context.Context, req contrato.CreateRequest) (*contrato.Contrato, error) {
	c, err := req.Novo()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.Contratos.Criar(ctx, c)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("criar contrato: %w", err)
	}

	s.notificar(ctx, "contrato", "criar", c.ID,
		"Contrato adicionado", "O contrato foi adicionado com sucesso.")
	return c, nil
}

func (s *Store) AtualizarContrato(ctx context.Context, id string, req contrato.UpdateRequest) error {
	campos, err := req.Campos()
	if err != nil {
		return err
	}

	s.mu.Lock()
	ok, err := s.Contratos.Atualizar(ctx, id, campos)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("atualizar contrato %s: %w", id, err)
	}
	if !ok {
		s.log.Debug("contrato inexistente, atualização ignorada", zap.String("id", id))
		return nil
	}

	s.notificar(ctx, "contrato", "atualizar", id,
		"Contrato atualizado", "Os dados do contrato foram atualizados com sucesso.")
	return nil
}

func (s *Store) BuscarContrato(ctx context.Context, id string) (*contrato.Contrato, error) {
	return s.Contratos.BuscarPorID(ctx, id)
}

func (s *Store) ContratosPorEscritorio(ctx context.Context, escritorioID string) ([]contrato.Contrato, error) {
	return s.Contratos.ListarPorEscritorio(ctx, escritorioID)
}

// ListarContratos filtra pelo nome do escritório, tipo de serviço ou departamento.
func (s *Store) ListarContratos(ctx context.Context, busca string) ([]contrato.Contrato, error) {
	list, err := s.Contratos.ListarTodos(ctx)
	if err != nil || busca == "" {
		return list, err
	}
	nomes, err := s.nomesEscritorios(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]contrato.Contrato, 0, len(list))
	for _, c := range list {
		if contem(busca, nomes[c.EscritorioID], string(c.TipoServico), c.Departamento) {
			out = append(out, c)
		}
	}
	return out, nil
}
