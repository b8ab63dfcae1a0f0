package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalpay/api-honorarios/internal/config"
	"github.com/legalpay/api-honorarios/internal/kv"
)

var usuariosTeste = []config.UsuarioPadrao{
	{Email: "admin@example.com", Senha: "password123", Nome: "Administrador"},
	{Email: "user@example.com", Senha: "password123", Nome: "Usuário"},
}

func novoManager(t *testing.T, store kv.Store) *Manager {
	t.Helper()
	m, err := NewManager(store, NewTokens("segredo-de-teste", time.Hour), Options{UsuariosPadrao: usuariosTeste})
	require.NoError(t, err)
	m.Restaurar(context.Background())
	return m
}

func sessaoGravada(t *testing.T, store kv.Store) (sessaoPersistida, bool) {
	t.Helper()
	raw, ok, err := store.Get(context.Background(), ChaveSessao)
	require.NoError(t, err)
	if !ok {
		return sessaoPersistida{}, false
	}
	var s sessaoPersistida
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s, true
}

func TestEstadoInicial(t *testing.T) {
	m, err := NewManager(kv.NewMemory(), NewTokens("x", time.Hour), Options{})
	require.NoError(t, err)
	assert.Equal(t, Autenticando, m.Estado())

	m.Restaurar(context.Background())
	assert.Equal(t, NaoAutenticado, m.Estado())
	assert.Nil(t, m.UsuarioAtual())
}

func TestLoginValido(t *testing.T) {
	store := kv.NewMemory()
	m := novoManager(t, store)

	for _, u := range usuariosTeste {
		got, token, err := m.Login(context.Background(), u.Email, u.Senha)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, u.Email, got.Email)
		assert.Equal(t, u.Nome, got.Nome)
		assert.Equal(t, Autenticado, m.Estado())
		assert.True(t, m.Autenticado())

		s, ok := sessaoGravada(t, store)
		require.True(t, ok)
		assert.Equal(t, u.Email, s.Email)
		assert.Equal(t, token, s.Token)
	}
}

func TestLoginInvalido(t *testing.T) {
	store := kv.NewMemory()
	m := novoManager(t, store)

	casos := [][2]string{
		{"admin@example.com", "errada"},
		{"ninguem@example.com", "password123"},
		{"ADMIN@example.com", "password123"},
		{"", ""},
	}
	for _, c := range casos {
		_, _, err := m.Login(context.Background(), c[0], c[1])
		assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
		assert.Equal(t, NaoAutenticado, m.Estado())
		_, ok := sessaoGravada(t, store)
		assert.False(t, ok)
	}
}

func TestLoginFalhoRestauraSessaoAnterior(t *testing.T) {
	m := novoManager(t, kv.NewMemory())
	_, _, err := m.Login(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)

	_, _, err = m.Login(context.Background(), "user@example.com", "errada")
	require.ErrorIs(t, err, ErrCredenciaisInvalidas)
	assert.Equal(t, Autenticado, m.Estado())
	assert.Equal(t, "admin@example.com", m.UsuarioAtual().Email)
}

func TestLoginRespeitaCancelamento(t *testing.T) {
	m, err := NewManager(kv.NewMemory(), NewTokens("x", time.Hour), Options{
		Atraso:         time.Minute,
		UsuariosPadrao: usuariosTeste,
	})
	require.NoError(t, err)
	m.Restaurar(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err = m.Login(ctx, "admin@example.com", "password123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, NaoAutenticado, m.Estado())
}

func TestRegistrar(t *testing.T) {
	store := kv.NewMemory()
	m := novoManager(t, store)
	ctx := context.Background()

	err := m.Registrar(ctx, "admin@example.com", "outra-senha", "Outro")
	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
	assert.Len(t, m.UsuariosCadastrados(ctx), 2)

	require.NoError(t, m.Registrar(ctx, "novo@example.com", "segredo1", "Novo"))
	usuarios := m.UsuariosCadastrados(ctx)
	require.Len(t, usuarios, 3)
	assert.Equal(t, Usuario{Email: "novo@example.com", Nome: "Novo"}, usuarios[2])
	assert.Equal(t, NaoAutenticado, m.Estado())

	raw, ok, err := store.Get(ctx, ChaveUsuarios)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "segredo1")

	_, _, err = m.Login(ctx, "novo@example.com", "segredo1")
	require.NoError(t, err)

	err = m.Registrar(ctx, "novo@example.com", "x", "")
	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
	assert.Len(t, m.UsuariosCadastrados(ctx), 3)
}

func TestLogout(t *testing.T) {
	store := kv.NewMemory()
	m := novoManager(t, store)
	ctx := context.Background()

	_, token, err := m.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	_, err = m.ValidarSessao(token)
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	assert.Equal(t, NaoAutenticado, m.Estado())
	assert.Nil(t, m.UsuarioAtual())
	_, ok := sessaoGravada(t, store)
	assert.False(t, ok)

	_, err = m.ValidarSessao(token)
	assert.ErrorIs(t, err, ErrSessaoInvalida)

	require.NoError(t, m.Logout(ctx))
}

func TestRestaurarSessaoPersistida(t *testing.T) {
	store := kv.NewMemory()
	m := novoManager(t, store)
	_, token, err := m.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	outro := novoManager(t, store)
	assert.Equal(t, Autenticado, outro.Estado())
	assert.Equal(t, "user@example.com", outro.UsuarioAtual().Email)
	u, err := outro.ValidarSessao(token)
	require.NoError(t, err)
	assert.Equal(t, "Usuário", u.Nome)
}

func TestRestaurarSessaoCorrompida(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"{nao é json", `{"name":"sem email"}`, `[]`} {
		store := kv.NewMemory()
		require.NoError(t, store.Set(ctx, ChaveSessao, raw))

		m := novoManager(t, store)
		assert.Equal(t, NaoAutenticado, m.Estado(), raw)
		_, ok := sessaoGravada(t, store)
		assert.False(t, ok, raw)
	}
}

func TestUsuariosCorrompidosUsamListaPadrao(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, ChaveUsuarios, "isso não é json"))

	m := novoManager(t, store)
	assert.Len(t, m.UsuariosCadastrados(ctx), 2)

	_, _, err := m.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
}

func TestTokens(t *testing.T) {
	tk := NewTokens("segredo", time.Hour)
	token, err := tk.GerarToken(Usuario{Email: "a@b.com", Nome: "A"})
	require.NoError(t, err)

	c, err := tk.ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", c.Email)
	assert.Equal(t, "a@b.com", c.Subject)

	_, err = NewTokens("outro", time.Hour).ValidarToken(token)
	assert.Error(t, err)

	expirado, err := NewTokens("segredo", -time.Minute).GerarToken(Usuario{Email: "a@b.com"})
	require.NoError(t, err)
	_, err = tk.ValidarToken(expirado)
	assert.Error(t, err)
}

func TestRestaurarSessaoComTokenInvalido(t *testing.T) {
	ctx := context.Background()
	expirado, err := NewTokens("segredo-de-teste", -time.Minute).GerarToken(Usuario{Email: "admin@example.com"})
	require.NoError(t, err)
	outroSegredo, err := NewTokens("outro-segredo", time.Hour).GerarToken(Usuario{Email: "admin@example.com"})
	require.NoError(t, err)
	outroEmail, err := NewTokens("segredo-de-teste", time.Hour).GerarToken(Usuario{Email: "user@example.com"})
	require.NoError(t, err)

	casos := map[string]sessaoPersistida{
		"expirado":      {Email: "admin@example.com", Nome: "Administrador", Token: expirado},
		"outro segredo": {Email: "admin@example.com", Token: outroSegredo},
		"outro email":   {Email: "admin@example.com", Token: outroEmail},
		"sem token":     {Email: "admin@example.com"},
	}
	for nome, s := range casos {
		t.Run(nome, func(t *testing.T) {
			store := kv.NewMemory()
			b, err := json.Marshal(s)
			require.NoError(t, err)
			require.NoError(t, store.Set(ctx, ChaveSessao, string(b)))

			m := novoManager(t, store)
			assert.Equal(t, NaoAutenticado, m.Estado())
			assert.Nil(t, m.UsuarioAtual())
			_, ok := sessaoGravada(t, store)
			assert.False(t, ok)
		})
	}
}
