// Package store é o contêiner dos dados de negócio: escritórios, contratos e
// honorários. Uma única instância é criada na subida e injetada nos handlers.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/contrato"
	"github.com/legalpay/api-honorarios/internal/escritorio"
	"github.com/legalpay/api-honorarios/internal/honorario"
	"github.com/legalpay/api-honorarios/internal/metrics"
	"github.com/legalpay/api-honorarios/internal/notificacao"
)

// Store serializa as escritas com um mutex: um escritor por vez.
// Leituras vão direto aos repositórios.
type Store struct {
	mu sync.Mutex

	DB          *gorm.DB
	Escritorios *escritorio.Repository
	Contratos   *contrato.Repository
	Honorarios  *honorario.Repository

	notifier notificacao.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
	agora    func() time.Time
}

type Option func(*Store)

func WithNotifier(n notificacao.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithRelogio troca a fonte de horário (usada na data de criação dos honorários).
func WithRelogio(agora func() time.Time) Option {
	return func(s *Store) { s.agora = agora }
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		DB:          db,
		Escritorios: escritorio.NewRepository(db),
		Contratos:   contrato.NewRepository(db),
		Honorarios:  honorario.NewRepository(db),
		notifier:    notificacao.Nop{},
		log:         zap.NewNop(),
		agora:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate cria as tabelas das três entidades.
func Migrate(db *gorm.DB) error {
	if err := escritorio.Migrate(db); err != nil {
		return err
	}
	if err := contrato.Migrate(db); err != nil {
		return err
	}
	return honorario.Migrate(db)
}

// Agora expõe o relógio do store para quem monta indicadores.
func (s *Store) Agora() time.Time {
	return s.agora()
}

func (s *Store) notificar(ctx context.Context, entidade, operacao, id, titulo, descricao string) {
	s.metrics.Operacao(entidade, operacao)
	s.notifier.Notificar(ctx, notificacao.Evento{
		Titulo:    titulo,
		Descricao: descricao,
		Entidade:  entidade,
		ID:        id,
		Em:        s.agora(),
	})
}
