package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/config"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// UsuarioArmazenado é um registro da lista de credenciais. Só o hash da senha é guardado.
type UsuarioArmazenado struct {
	Email     string `json:"email"`
	SenhaHash string `json:"passwordHash"`
	Nome      string `json:"name"`
}

func hashUsuariosPadrao(padrao []config.UsuarioPadrao) ([]UsuarioArmazenado, error) {
	out := make([]UsuarioArmazenado, 0, len(padrao))
	for _, p := range padrao {
		hash, err := utils.HashSenha(p.Senha)
		if err != nil {
			return nil, fmt.Errorf("hash do usuário padrão %s: %w", p.Email, err)
		}
		out = append(out, UsuarioArmazenado{Email: p.Email, SenhaHash: hash, Nome: p.Nome})
	}
	return out, nil
}

// carregarUsuarios lê a lista persistida. Ausente, ilegível ou corrompida, vale a lista padrão.
func (m *Manager) carregarUsuarios(ctx context.Context) []UsuarioArmazenado {
	padrao := append([]UsuarioArmazenado(nil), m.padrao...)

	raw, ok, err := m.kv.Get(ctx, ChaveUsuarios)
	if err != nil {
		m.log.Error("erro ao ler usuários armazenados", zap.Error(err))
		return padrao
	}
	if !ok {
		return padrao
	}
	var usuarios []UsuarioArmazenado
	if err := json.Unmarshal([]byte(raw), &usuarios); err != nil {
		m.log.Warn("usuários armazenados corrompidos, usando a lista padrão", zap.Error(err))
		return padrao
	}
	return usuarios
}

func (m *Manager) salvarUsuarios(ctx context.Context, usuarios []UsuarioArmazenado) error {
	b, err := json.Marshal(usuarios)
	if err != nil {
		return err
	}
	return m.kv.Set(ctx, ChaveUsuarios, string(b))
}

func buscarUsuario(usuarios []UsuarioArmazenado, email string) *UsuarioArmazenado {
	for i := range usuarios {
		if usuarios[i].Email == email {
			return &usuarios[i]
		}
	}
	return nil
}
