// Package notificacao avisa quem estiver interessado sobre alterações no cadastro.
package notificacao

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Evento descreve uma alteração concluída com sucesso.
type Evento struct {
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Entidade  string    `json:"entidade"`
	ID        string    `json:"id"`
	Em        time.Time `json:"em"`
}

// Notifier recebe eventos. Falhas ficam com a implementação: quem notifica não é interrompido.
type Notifier interface {
	Notificar(ctx context.Context, ev Evento)
}

// Nop descarta os eventos.
type Nop struct{}

func (Nop) Notificar(context.Context, Evento) {}

// LogNotifier registra os eventos no log.
type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) Notificar(_ context.Context, ev Evento) {
	n.Log.Info(ev.Titulo,
		zap.String("descricao", ev.Descricao),
		zap.String("entidade", ev.Entidade),
		zap.String("id", ev.ID),
	)
}

// Multi repassa o evento a todos os notifiers, em ordem.
type Multi []Notifier

func (m Multi) Notificar(ctx context.Context, ev Evento) {
	for _, n := range m {
		n.Notificar(ctx, ev)
	}
}
