package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type Handler struct {
	Manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{Manager: m}
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"password"`
}

type RegisterRequest struct {
	Email string `json:"email"`
	Senha string `json:"password"`
	Nome  string `json:"name"`
}

func (r RegisterRequest) Validar() error {
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return errors.New("e-mail inválido")
	}
	if len(r.Senha) < 6 {
		return errors.New("a senha deve ter pelo menos 6 caracteres")
	}
	return nil
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int64   `json:"expires_in"`
	Usuario     Usuario `json:"user"`
}

type StatusResponse struct {
	Estado  Estado   `json:"status"`
	Usuario *Usuario `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	u, token, err := h.Manager.Login(r.Context(), req.Email, req.Senha)
	if errors.Is(err, ErrCredenciaisInvalidas) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao autenticar", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.Manager.tokens.TTL().Seconds()),
		Usuario:     *u,
	})
}

// POST /auth/register
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Manager.Registrar(r.Context(), req.Email, req.Senha, req.Nome)
	if errors.Is(err, ErrEmailJaCadastrado) {
		http.Error(w, "E-mail já cadastrado", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao cadastrar usuário", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, Usuario{Email: req.Email, Nome: req.Nome})
}

// POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Manager.Logout(r.Context()); err != nil {
		http.Error(w, "Erro ao encerrar sessão", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /auth/me
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Estado:  h.Manager.Estado(),
		Usuario: h.Manager.UsuarioAtual(),
	})
}
