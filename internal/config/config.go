// Package config carrega as configurações do serviço a partir do ambiente.
// Um arquivo .env, se existir, é lido antes.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// UsuarioPadrao é uma credencial semeada quando não há lista persistida.
type UsuarioPadrao struct {
	Email string
	Senha string
	Nome  string
}

// Config representa as configurações necessárias do serviço.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	// Vazio usa SQLite em memória.
	DatabaseURL  string
	SeedFixtures bool

	// Vazio usa armazenamento chave/valor em memória.
	RedisURL string

	JWTSecret  string
	SessionTTL time.Duration
	LoginDelay time.Duration

	WebhookURL  string
	CORSOrigins []string

	UsuariosPadrao []UsuarioPadrao
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getenvDuration aceita "1s", "500ms" ou um inteiro em milissegundos.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load lê o .env (se houver) e devolve a configuração com defaults de desenvolvimento.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getenv("PORT", "8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "json"),
		DatabaseURL:  getenv("DATABASE_URL", ""),
		SeedFixtures: getenvBool("SEED_FIXTURES", true),
		RedisURL:     getenv("REDIS_URL", ""),
		JWTSecret:    getenv("JWT_SECRET", "change-me"),
		SessionTTL:   getenvDuration("SESSION_TTL", 24*time.Hour),
		LoginDelay:   getenvDuration("LOGIN_DELAY", time.Second),
		WebhookURL:   getenv("WEBHOOK_URL", ""),
		CORSOrigins:  getenvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		UsuariosPadrao: []UsuarioPadrao{
			{Email: "admin@example.com", Senha: "password123", Nome: "Administrador"},
			{Email: "user@example.com", Senha: "password123", Nome: "Usuário"},
		},
	}
}
