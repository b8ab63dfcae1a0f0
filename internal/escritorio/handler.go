package escritorio

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Service é o que o handler precisa do store.
type Service interface {
	CriarEscritorio(ctx context.Context, req CreateRequest) (*Escritorio, error)
	AtualizarEscritorio(ctx context.Context, id string, req UpdateRequest) error
	BuscarEscritorio(ctx context.Context, id string) (*Escritorio, error)
	ListarEscritorios(ctx context.Context, busca string) ([]Escritorio, error)
}

type Handler struct {
	Service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{Service: svc}
}

// POST /escritorios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.Service.CriarEscritorio(r.Context(), req)
	if err != nil {
		http.Error(w, "erro ao salvar escritório", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

// GET /escritorios?q=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListarEscritorios(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "erro ao listar escritórios", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Escritorio{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /escritorios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.BuscarEscritorio(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "erro ao buscar escritório", http.StatusInternalServerError)
		return
	}
	if e == nil {
		http.Error(w, "escritório não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// PUT /escritorios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.AtualizarEscritorio(r.Context(), id, req); err != nil {
		http.Error(w, "erro ao atualizar escritório", http.StatusInternalServerError)
		return
	}

	// o store ignora IDs inexistentes; a API responde 404 nesse caso
	e, err := h.Service.BuscarEscritorio(r.Context(), id)
	if err != nil {
		http.Error(w, "erro ao buscar escritório", http.StatusInternalServerError)
		return
	}
	if e == nil {
		http.Error(w, "escritório não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}
