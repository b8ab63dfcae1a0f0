package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/auth"
	"github.com/legalpay/api-honorarios/internal/config"
	"github.com/legalpay/api-honorarios/internal/contrato"
	"github.com/legalpay/api-honorarios/internal/dashboard"
	"github.com/legalpay/api-honorarios/internal/escritorio"
	"github.com/legalpay/api-honorarios/internal/honorario"
	"github.com/legalpay/api-honorarios/internal/kv"
	"github.com/legalpay/api-honorarios/internal/logger"
	"github.com/legalpay/api-honorarios/internal/metrics"
	"github.com/legalpay/api-honorarios/internal/notificacao"
	"github.com/legalpay/api-honorarios/internal/seed"
	"github.com/legalpay/api-honorarios/internal/store"
	"github.com/legalpay/api-honorarios/internal/utils/db"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	conn, err := db.GetDB(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("erro ao conectar no banco", zap.Error(err))
	}
	if err := store.Migrate(conn); err != nil {
		log.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	m := metrics.New()

	var notifier notificacao.Notifier = notificacao.LogNotifier{Log: log}
	var webhook *notificacao.WebhookNotifier
	if cfg.WebhookURL != "" {
		webhook = notificacao.NewWebhookNotifier(cfg.WebhookURL, log)
		notifier = notificacao.Multi{notifier, webhook}
	}

	st := store.New(conn,
		store.WithNotifier(notifier),
		store.WithMetrics(m),
		store.WithLogger(log),
	)
	if cfg.SeedFixtures {
		if err := seed.Carregar(ctx, st, log); err != nil {
			log.Fatal("erro ao carregar dados de demonstração", zap.Error(err))
		}
	}

	var sessoes kv.Store = kv.NewMemory()
	if cfg.RedisURL != "" {
		rdb, err := kv.NewRedis(ctx, cfg.RedisURL, "honorarios:")
		if err != nil {
			log.Fatal("erro ao conectar no redis", zap.Error(err))
		}
		defer rdb.Close()
		sessoes = rdb
	}

	manager, err := auth.NewManager(sessoes, auth.NewTokens(cfg.JWTSecret, cfg.SessionTTL), auth.Options{
		Atraso:         cfg.LoginDelay,
		UsuariosPadrao: cfg.UsuariosPadrao,
		Log:            log,
		Metrics:        m,
	})
	if err != nil {
		log.Fatal("erro ao iniciar autenticação", zap.Error(err))
	}
	manager.Restaurar(ctx)

	// Handlers
	authHandler := auth.NewHandler(manager)
	escritorioHandler := escritorio.NewHandler(st)
	contratoHandler := contrato.NewHandler(st)
	honorarioHandler := honorario.NewHandler(st)
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(st))

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/register", authHandler.Registrar).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/auth/me", authHandler.Status).Methods("GET")
	r.Handle("/metrics", m.Handler()).Methods("GET")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.Middleware(manager))

	// Rotas de escritórios
	api.HandleFunc("/escritorios", escritorioHandler.Criar).Methods("POST")
	api.HandleFunc("/escritorios", escritorioHandler.Listar).Methods("GET")
	api.HandleFunc("/escritorios/{id}", escritorioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/escritorios/{id}", escritorioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/escritorios/{id}/contratos", contratoHandler.ListarPorEscritorio).Methods("GET")
	api.HandleFunc("/escritorios/{id}/honorarios", honorarioHandler.ListarPorEscritorio).Methods("GET")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.CriarContrato).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.ListarContratos).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}/honorarios", honorarioHandler.ListarPorContrato).Methods("GET")

	// Rotas de honorários
	api.HandleFunc("/honorarios", honorarioHandler.Criar).Methods("POST")
	api.HandleFunc("/honorarios", honorarioHandler.Listar).Methods("GET")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.Atualizar).Methods("PUT")

	api.HandleFunc("/dashboard", dashboardHandler.Resumo).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("servidor rodando", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("servidor encerrado", zap.Error(err))
		}
	}()

	sinal, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sinal.Done()

	log.Info("encerrando servidor")
	desligar, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(desligar); err != nil {
		log.Error("erro ao encerrar servidor", zap.Error(err))
	}
	if webhook != nil {
		webhook.Aguardar()
	}
}
