// internal/honorario/handler.go
package honorario

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Service interface {
	CriarHonorario(ctx context.Context, req CreateRequest) (*Honorario, error)
	AtualizarHonorario(ctx context.Context, id string, req UpdateRequest) error
	BuscarHonorario(ctx context.Context, id string) (*Honorario, error)
	ListarHonorarios(ctx context.Context, busca string) ([]Honorario, error)
	HonorariosPorEscritorio(ctx context.Context, escritorioID string) ([]Honorario, error)
	HonorariosPorContrato(ctx context.Context, contratoID string) ([]Honorario, error)
}

type Handler struct {
	Service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{Service: svc}
}

func responder(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func responderLista(w http.ResponseWriter, list []Honorario, err error) {
	if err != nil {
		http.Error(w, "Erro ao buscar honorários", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Honorario{}
	}
	responder(w, http.StatusOK, list)
}

// POST /honorarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := in.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hon, err := h.Service.CriarHonorario(r.Context(), in)
	if err != nil {
		http.Error(w, "Erro ao criar honorário", http.StatusInternalServerError)
		return
	}
	responder(w, http.StatusCreated, hon)
}

// GET /honorarios?q=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListarHonorarios(r.Context(), r.URL.Query().Get("q"))
	responderLista(w, list, err)
}

// GET /escritorios/{id}/honorarios
func (h *Handler) ListarPorEscritorio(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.HonorariosPorEscritorio(r.Context(), mux.Vars(r)["id"])
	responderLista(w, list, err)
}

// GET /contratos/{id}/honorarios
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.HonorariosPorContrato(r.Context(), mux.Vars(r)["id"])
	responderLista(w, list, err)
}

// GET /honorarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	hon, err := h.Service.BuscarHonorario(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Erro ao buscar honorário", http.StatusInternalServerError)
		return
	}
	if hon == nil {
		http.Error(w, "Honorário não encontrado", http.StatusNotFound)
		return
	}
	responder(w, http.StatusOK, hon)
}

// PUT /honorarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := in.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Service.AtualizarHonorario(r.Context(), id, in); err != nil {
		http.Error(w, "Erro ao atualizar honorário", http.StatusInternalServerError)
		return
	}
	hon, err := h.Service.BuscarHonorario(r.Context(), id)
	if err != nil {
		http.Error(w, "Erro ao buscar honorário", http.StatusInternalServerError)
		return
	}
	if hon == nil {
		http.Error(w, "Honorário não encontrado", http.StatusNotFound)
		return
	}
	responder(w, http.StatusOK, hon)
}
