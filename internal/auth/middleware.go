package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const CtxUsuario ctxKey = "usuario"

// Middleware exige o token da sessão atual no header Authorization.
func Middleware(m *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			u, err := m.ValidarSessao(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), CtxUsuario, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsuarioDoContexto devolve o usuário colocado pelo Middleware.
func UsuarioDoContexto(ctx context.Context) (*Usuario, bool) {
	u, ok := ctx.Value(CtxUsuario).(*Usuario)
	return u, ok && u != nil
}
