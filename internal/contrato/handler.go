package contrato

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Service interface {
	CriarContrato(ctx context.Context, req CreateRequest) (*Contrato, error)
	AtualizarContrato(ctx context.Context, id string, req UpdateRequest) error
	BuscarContrato(ctx context.Context, id string) (*Contrato, error)
	ListarContratos(ctx context.Context, busca string) ([]Contrato, error)
	ContratosPorEscritorio(ctx context.Context, escritorioID string) ([]Contrato, error)
}

type Handler struct {
	Service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{Service: svc}
}

func encode(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// POST /contratos
func (h *Handler) CriarContrato(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.Service.CriarContrato(r.Context(), req)
	if err != nil {
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	encode(w, http.StatusCreated, c)
}

// GET /contratos?q=
func (h *Handler) ListarContratos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListarContratos(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Contrato{}
	}
	encode(w, http.StatusOK, list)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.BuscarContrato(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	encode(w, http.StatusOK, c)
}

// GET /escritorios/{id}/contratos
func (h *Handler) ListarPorEscritorio(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ContratosPorEscritorio(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Contrato{}
	}
	encode(w, http.StatusOK, list)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Service.AtualizarContrato(r.Context(), id, req); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	c, err := h.Service.BuscarContrato(r.Context(), id)
	if err != nil {
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	encode(w, http.StatusOK, c)
}
