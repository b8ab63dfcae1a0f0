package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/escritorio"
)

// CriarEscritorio cadastra o escritório com um ID novo.
func (s *Store) CriarEscritorio(ctx context.Context, req escritorio.CreateRequest) (*escritorio.Escritorio, error) {
	e := req.Novo()

	s.mu.Lock()
	err := s.Escritorios.Criar(ctx, e)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("criar escritório: %w", err)
	}

	s.notificar(ctx, "escritorio", "criar", e.ID,
		"Escritório adicionado", fmt.Sprintf("%s foi adicionado com sucesso.", e.Nome))
	return e, nil
}

// AtualizarEscritorio aplica o patch. ID inexistente não é erro: nada muda.
func (s *Store) AtualizarEscritorio(ctx context.Context, id string, req escritorio.UpdateRequest) error {
	s.mu.Lock()
	ok, err := s.Escritorios.Atualizar(ctx, id, req.Campos())
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("atualizar escritório %s: %w", id, err)
	}
	if !ok {
		s.log.Debug("escritório inexistente, atualização ignorada", zap.String("id", id))
		return nil
	}

	s.notificar(ctx, "escritorio", "atualizar", id,
		"Escritório atualizado", "Os dados do escritório foram atualizados com sucesso.")
	return nil
}

// BuscarEscritorio devolve nil quando não há escritório com o ID.
func (s *Store) BuscarEscritorio(ctx context.Context, id string) (*escritorio.Escritorio, error) {
	return s.Escritorios.BuscarPorID(ctx, id)
}

// ListarEscritorios devolve todos, ou só os que casam com a busca por nome,
// documento, e-mail ou área.
func (s *Store) ListarEscritorios(ctx context.Context, busca string) ([]escritorio.Escritorio, error) {
	list, err := s.Escritorios.ListarTodos(ctx)
	if err != nil || busca == "" {
		return list, err
	}
	out := make([]escritorio.Escritorio, 0, len(list))
	for _, e := range list {
		if contem(busca, e.Nome, e.Documento, e.Email, e.Area) {
			out = append(out, e)
		}
	}
	return out, nil
}
