package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalpay/api-honorarios/internal/kv"
)

func novoRouter(t *testing.T) (*mux.Router, *Manager) {
	t.Helper()
	m := novoManager(t, kv.NewMemory())
	h := NewHandler(m)

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/auth/register", h.Registrar).Methods("POST")
	r.HandleFunc("/auth/logout", h.Logout).Methods("POST")
	r.HandleFunc("/auth/me", h.Status).Methods("GET")

	api := r.PathPrefix("/").Subrouter()
	api.Use(Middleware(m))
	api.HandleFunc("/privado", func(w http.ResponseWriter, r *http.Request) {
		u, ok := UsuarioDoContexto(r.Context())
		if !ok {
			http.Error(w, "sem usuário", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(u.Email))
	}).Methods("GET", "OPTIONS")
	return r, m
}

func fazer(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerLogin(t *testing.T) {
	r, _ := novoRouter(t)

	rec := fazer(r, "POST", "/auth/login", `{"email":"admin@example.com","password":"errada"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenciais inválidas")

	rec = fazer(r, "POST", "/auth/login", `{`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fazer(r, "POST", "/auth/login", `{"email":"admin@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "admin@example.com", resp.Usuario.Email)

	rec = fazer(r, "GET", "/auth/me", "", "")
	var st StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, Autenticado, st.Estado)
	require.NotNil(t, st.Usuario)
	assert.Equal(t, "admin@example.com", st.Usuario.Email)
}

func TestHandlerRegistrar(t *testing.T) {
	r, m := novoRouter(t)

	rec := fazer(r, "POST", "/auth/register", `{"email":"novo@example.com","password":"123","name":"Novo"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fazer(r, "POST", "/auth/register", `{"email":"user@example.com","password":"123456","name":"Outro"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = fazer(r, "POST", "/auth/register", `{"email":"novo@example.com","password":"123456","name":"Novo"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, NaoAutenticado, m.Estado())
	assert.NotContains(t, rec.Body.String(), "123456")
}

func TestMiddleware(t *testing.T) {
	r, _ := novoRouter(t)

	rec := fazer(r, "GET", "/privado", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fazer(r, "GET", "/privado", "", "lixo")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fazer(r, "POST", "/auth/login", `{"email":"user@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = fazer(r, "GET", "/privado", "", resp.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", rec.Body.String())

	rec = fazer(r, "POST", "/auth/logout", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = fazer(r, "GET", "/privado", "", resp.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
