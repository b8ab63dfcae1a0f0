package notificacao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type coletor struct{ eventos []Evento }

func (c *coletor) Notificar(_ context.Context, ev Evento) { c.eventos = append(c.eventos, ev) }

func TestMulti(t *testing.T) {
	a, b := &coletor{}, &coletor{}
	Multi{a, Nop{}, b}.Notificar(context.Background(), Evento{Titulo: "Contrato adicionado"})
	require.Len(t, a.eventos, 1)
	require.Len(t, b.eventos, 1)
	assert.Equal(t, "Contrato adicionado", b.eventos[0].Titulo)
}

func TestWebhookNotifier(t *testing.T) {
	recebido := make(chan Evento, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var ev Evento
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		recebido <- ev
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, zap.NewNop())
	n.Notificar(context.Background(), Evento{
		Titulo:    "Fatura adicionada",
		Descricao: "A fatura foi adicionada com sucesso.",
		Entidade:  "honorario",
		ID:        "01HX",
		Em:        time.Now(),
	})

	select {
	case ev := <-recebido:
		assert.Equal(t, "Fatura adicionada", ev.Titulo)
		assert.Equal(t, "honorario", ev.Entidade)
	case <-time.After(time.Second):
		t.Fatal("webhook não recebeu o evento")
	}
}

func TestWebhookNotifierFalhaNaoPropaga(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	srv.Close()

	n := NewWebhookNotifier(srv.URL, zap.NewNop())
	assert.NotPanics(t, func() {
		n.Notificar(context.Background(), Evento{Titulo: "x"})
		n.Aguardar()
	})
}

func TestWebhookNotifierNaoBloqueiaENaoCancela(t *testing.T) {
	liberar := make(chan struct{})
	recebido := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-liberar
		var ev Evento
		_ = json.NewDecoder(r.Body).Decode(&ev)
		recebido <- ev.Titulo
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	inicio := time.Now()
	n.Notificar(ctx, Evento{Titulo: "Contrato atualizado"})
	assert.Less(t, time.Since(inicio), 200*time.Millisecond)

	// a requisição de origem termina antes do webhook responder
	cancel()
	close(liberar)
	n.Aguardar()

	select {
	case titulo := <-recebido:
		assert.Equal(t, "Contrato atualizado", titulo)
	case <-time.After(time.Second):
		t.Fatal("webhook não recebeu o evento")
	}
}
