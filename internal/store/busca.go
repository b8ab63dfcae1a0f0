package store

import (
	"context"
	"strings"
)

// contem faz a busca sem diferenciar maiúsculas; campos vazios nunca casam.
func contem(busca string, campos ...string) bool {
	termo := strings.ToLower(strings.TrimSpace(busca))
	if termo == "" {
		return true
	}
	for _, c := range campos {
		if c != "" && strings.Contains(strings.ToLower(c), termo) {
			return true
		}
	}
	return false
}

func (s *Store) nomesEscritorios(ctx context.Context) (map[string]string, error) {
	list, err := s.Escritorios.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	nomes := make(map[string]string, len(list))
	for _, e := range list {
		nomes[e.ID] = e.Nome
	}
	return nomes, nil
}
