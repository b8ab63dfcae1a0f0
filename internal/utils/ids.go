package utils

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	idMu     sync.Mutex
	entropia = ulid.Monotonic(rand.Reader, 0)
)

// NovoID gera um identificador ULID. IDs gerados no mesmo processo são
// estritamente crescentes, então ordenar por id devolve a ordem de inserção.
func NovoID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropia).String()
}
