package dashboard

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// GET /dashboard
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Service.Montar(r.Context())
	if err != nil {
		http.Error(w, "Erro ao montar dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}
