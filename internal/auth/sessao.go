package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/config"
	"github.com/legalpay/api-honorarios/internal/kv"
	"github.com/legalpay/api-honorarios/internal/metrics"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// Estado da sessão.
type Estado string

const (
	NaoAutenticado Estado = "unauthenticated"
	Autenticando   Estado = "authenticating"
	Autenticado    Estado = "authenticated"
)

// Chaves dos registros persistidos.
const (
	ChaveSessao   = "authUser"
	ChaveUsuarios = "storedUsers"
)

var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrEmailJaCadastrado    = errors.New("e-mail já cadastrado")
	ErrSessaoInvalida       = errors.New("sessão inválida")
)

// Usuario é a identidade da sessão, sem senha.
type Usuario struct {
	Email string `json:"email"`
	Nome  string `json:"name,omitempty"`
}

type sessaoPersistida struct {
	Email string `json:"email"`
	Nome  string `json:"name,omitempty"`
	Token string `json:"token,omitempty"`
}

type Options struct {
	// Atraso fixo aplicado a cada login.
	Atraso         time.Duration
	UsuariosPadrao []config.UsuarioPadrao
	Log            *zap.Logger
	Metrics        *metrics.Metrics
}

// Manager guarda a sessão atual (no máximo uma identidade logada) e a lista de credenciais.
type Manager struct {
	mu     sync.RWMutex
	estado Estado
	atual  *Usuario
	token  string

	// serializa login e cadastro
	escrita sync.Mutex

	kv      kv.Store
	tokens  *Tokens
	padrao  []UsuarioArmazenado
	atraso  time.Duration
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewManager cria o manager no estado Autenticando; chame Restaurar em seguida.
func NewManager(store kv.Store, tokens *Tokens, opts Options) (*Manager, error) {
	padrao, err := hashUsuariosPadrao(opts.UsuariosPadrao)
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		estado:  Autenticando,
		kv:      store,
		tokens:  tokens,
		padrao:  padrao,
		atraso:  opts.Atraso,
		log:     log.With(zap.String("component", "auth")),
		metrics: opts.Metrics,
	}, nil
}

// Restaurar lê a sessão persistida. Registro ausente, ilegível ou com token
// vencido deixa a sessão não autenticada; os dois últimos são apagados.
func (m *Manager) Restaurar(ctx context.Context) {
	m.definir(Autenticando, nil, "")

	raw, ok, err := m.kv.Get(ctx, ChaveSessao)
	if err != nil {
		m.log.Error("erro ao ler sessão persistida", zap.Error(err))
		m.definir(NaoAutenticado, nil, "")
		return
	}
	if !ok {
		m.definir(NaoAutenticado, nil, "")
		return
	}

	var s sessaoPersistida
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Email == "" {
		m.log.Warn("sessão persistida inválida, descartando", zap.Error(err))
		m.descartarSessao(ctx)
		return
	}

	if claims, err := m.tokens.ValidarToken(s.Token); err != nil || claims.Email != s.Email {
		m.log.Info("token da sessão persistida expirado ou inválido, descartando", zap.Error(err))
		m.descartarSessao(ctx)
		return
	}

	m.definir(Autenticado, &Usuario{Email: s.Email, Nome: s.Nome}, s.Token)
	m.log.Info("sessão restaurada", zap.String("email", s.Email))
}

// Login confere as credenciais depois do atraso fixo. Em caso de falha o
// estado anterior é restabelecido e ErrCredenciaisInvalidas é retornado.
func (m *Manager) Login(ctx context.Context, email, senha string) (*Usuario, string, error) {
	m.escrita.Lock()
	defer m.escrita.Unlock()

	m.mu.Lock()
	anterior, atual, token := m.estado, m.atual, m.token
	m.estado = Autenticando
	m.mu.Unlock()
	desfazer := func() { m.definir(anterior, atual, token) }

	if err := m.esperar(ctx); err != nil {
		desfazer()
		return nil, "", err
	}

	armazenado := buscarUsuario(m.carregarUsuarios(ctx), email)
	if armazenado == nil || !utils.VerificarSenha(armazenado.SenhaHash, senha) {
		desfazer()
		m.metrics.Login("falha")
		m.log.Warn("login recusado", zap.String("email", email))
		return nil, "", ErrCredenciaisInvalidas
	}

	u := Usuario{Email: armazenado.Email, Nome: armazenado.Nome}
	novoToken, err := m.tokens.GerarToken(u)
	if err != nil {
		desfazer()
		return nil, "", fmt.Errorf("gerar token: %w", err)
	}
	b, err := json.Marshal(sessaoPersistida{Email: u.Email, Nome: u.Nome, Token: novoToken})
	if err != nil {
		desfazer()
		return nil, "", err
	}
	if err := m.kv.Set(ctx, ChaveSessao, string(b)); err != nil {
		desfazer()
		return nil, "", fmt.Errorf("persistir sessão: %w", err)
	}

	m.definir(Autenticado, &u, novoToken)
	m.metrics.Login("sucesso")
	m.log.Info("login realizado", zap.String("email", u.Email))
	return &u, novoToken, nil
}

// Registrar acrescenta uma credencial. Não inicia sessão.
func (m *Manager) Registrar(ctx context.Context, email, senha, nome string) error {
	m.escrita.Lock()
	defer m.escrita.Unlock()

	usuarios := m.carregarUsuarios(ctx)
	if buscarUsuario(usuarios, email) != nil {
		return ErrEmailJaCadastrado
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		return fmt.Errorf("hash da senha: %w", err)
	}
	usuarios = append(usuarios, UsuarioArmazenado{Email: email, SenhaHash: hash, Nome: nome})
	if err := m.salvarUsuarios(ctx, usuarios); err != nil {
		return fmt.Errorf("salvar usuários: %w", err)
	}
	m.log.Info("usuário cadastrado", zap.String("email", email))
	return nil
}

// Logout encerra a sessão e apaga o registro persistido, haja sessão ou não.
func (m *Manager) Logout(ctx context.Context) error {
	m.definir(NaoAutenticado, nil, "")
	if err := m.kv.Delete(ctx, ChaveSessao); err != nil {
		m.log.Error("erro ao apagar sessão persistida", zap.Error(err))
		return err
	}
	return nil
}

func (m *Manager) Estado() Estado {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.estado
}

func (m *Manager) Autenticado() bool {
	return m.Estado() == Autenticado
}

// UsuarioAtual devolve uma cópia do usuário logado, ou nil.
func (m *Manager) UsuarioAtual() *Usuario {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.atual == nil {
		return nil
	}
	u := *m.atual
	return &u
}

// UsuariosCadastrados lista as credenciais conhecidas, sem os hashes.
func (m *Manager) UsuariosCadastrados(ctx context.Context) []Usuario {
	usuarios := m.carregarUsuarios(ctx)
	out := make([]Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, Usuario{Email: u.Email, Nome: u.Nome})
	}
	return out
}

// ValidarSessao aceita apenas o token da sessão atual, ainda válido.
func (m *Manager) ValidarSessao(token string) (*Usuario, error) {
	claims, err := m.tokens.ValidarToken(token)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.estado != Autenticado || m.atual == nil || m.token != token || m.atual.Email != claims.Email {
		return nil, ErrSessaoInvalida
	}
	u := *m.atual
	return &u, nil
}

func (m *Manager) descartarSessao(ctx context.Context) {
	if err := m.kv.Delete(ctx, ChaveSessao); err != nil {
		m.log.Error("erro ao apagar sessão persistida", zap.Error(err))
	}
	m.definir(NaoAutenticado, nil, "")
}

func (m *Manager) definir(estado Estado, u *Usuario, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.estado = estado
	m.atual = u
	m.token = token
}

func (m *Manager) esperar(ctx context.Context) error {
	if m.atraso <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.atraso)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
