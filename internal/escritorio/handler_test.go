package escritorio_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/escritorio"
	"github.com/legalpay/api-honorarios/internal/store"
	"github.com/legalpay/api-honorarios/internal/utils/db"
)

func novoRouter(t *testing.T) *mux.Router {
	t.Helper()
	conn, err := db.ConnectMemoria(zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Migrate(conn))

	h := escritorio.NewHandler(store.New(conn))
	r := mux.NewRouter()
	r.HandleFunc("/escritorios", h.Criar).Methods("POST")
	r.HandleFunc("/escritorios", h.Listar).Methods("GET")
	r.HandleFunc("/escritorios/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/escritorios/{id}", h.Atualizar).Methods("PUT")
	return r
}

func fazer(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCriarEBuscar(t *testing.T) {
	r := novoRouter(t)

	rec := fazer(r, "POST", "/escritorios", `{"name":"Firm X","document":"12345678901","email":"x@x.com","phone":"1","area":"Civil","status":"ativo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var criado escritorio.Escritorio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))
	require.NotEmpty(t, criado.ID)

	rec = fazer(r, "GET", "/escritorios/"+criado.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got escritorio.Escritorio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Firm X", got.Nome)

	rec = fazer(r, "GET", "/escritorios?q=firm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []escritorio.Escritorio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestValidacao(t *testing.T) {
	r := novoRouter(t)

	rec := fazer(r, "POST", "/escritorios", `{"name":"","document":"12345678901"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fazer(r, "POST", "/escritorios", `{"name":"X","document":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fazer(r, "POST", "/escritorios", `{"name":"X","document":"12345678901","status":"suspenso"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAtualizar(t *testing.T) {
	r := novoRouter(t)

	rec := fazer(r, "PUT", "/escritorios/nao-existe", `{"status":"inativo"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = fazer(r, "POST", "/escritorios", `{"name":"Firm X","document":"12345678000190"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var criado escritorio.Escritorio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

	rec = fazer(r, "PUT", "/escritorios/"+criado.ID, `{"status":"inativo"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got escritorio.Escritorio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, escritorio.StatusInativo, got.Status)
	assert.Equal(t, "Firm X", got.Nome)
}

func TestBuscarInexistente(t *testing.T) {
	r := novoRouter(t)
	rec := fazer(r, "GET", "/escritorios/nao-existe", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
