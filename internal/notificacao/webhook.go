package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WebhookNotifier envia cada evento como JSON para uma URL.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
	Log    *zap.Logger

	envios sync.WaitGroup
}

func NewWebhookNotifier(url string, log *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
		Log:    log,
	}
}

// Notificar envia em segundo plano. O envio não é cancelado junto com ctx.
func (n *WebhookNotifier) Notificar(ctx context.Context, ev Evento) {
	ctx = context.WithoutCancel(ctx)
	n.envios.Add(1)
	go func() {
		defer n.envios.Done()
		n.enviar(ctx, ev)
	}()
}

// Aguardar bloqueia até os envios em andamento terminarem.
func (n *WebhookNotifier) Aguardar() {
	n.envios.Wait()
}

func (n *WebhookNotifier) enviar(ctx context.Context, ev Evento) {
	body, err := json.Marshal(ev)
	if err != nil {
		n.Log.Error("erro ao serializar evento", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		n.Log.Error("erro ao montar webhook", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		n.Log.Warn("erro ao enviar webhook", zap.String("url", n.URL), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.Log.Warn("webhook recusou o evento", zap.String("url", n.URL), zap.Int("status", resp.StatusCode))
	}
}
