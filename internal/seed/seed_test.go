package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/legalpay/api-honorarios/internal/store"
	"github.com/legalpay/api-honorarios/internal/utils"
	"github.com/legalpay/api-honorarios/internal/utils/db"
)

func TestCarregar(t *testing.T) {
	conn, err := db.ConnectMemoria(zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Migrate(conn))
	s := store.New(conn)
	ctx := context.Background()

	require.NoError(t, Carregar(ctx, s, zap.NewNop()))
	require.NoError(t, Carregar(ctx, s, zap.NewNop()))

	es, err := s.ListarEscritorios(ctx, "")
	require.NoError(t, err)
	assert.Len(t, es, len(escritorios))
	assert.Equal(t, escritorios[0].Nome, es[0].Nome)

	hs, err := s.ListarHonorarios(ctx, "")
	require.NoError(t, err)
	require.Len(t, hs, len(honorarios))
	assert.Equal(t, "2024-02-01", utils.DataString(hs[0].DataCriacao))

	for _, h := range hs {
		c, err := s.BuscarContrato(ctx, h.ContratoID)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, c.EscritorioID, h.EscritorioID)
	}
}
