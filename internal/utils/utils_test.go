package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovoIDCrescente(t *testing.T) {
	anterior := NovoID()
	for i := 0; i < 1000; i++ {
		id := NovoID()
		require.Len(t, id, 26)
		require.Greater(t, id, anterior)
		anterior = id
	}
}

func TestSenha(t *testing.T) {
	hash, err := HashSenha("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, VerificarSenha(hash, "password123"))
	assert.False(t, VerificarSenha(hash, "outra"))
	assert.False(t, VerificarSenha("", "password123"))
}

func TestParseData(t *testing.T) {
	d, err := ParseData("2024-02-20")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-20", DataString(d))

	_, err = ParseData("20/02/2024")
	assert.Error(t, err)

	p, err := ParseDataOpcional(nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestHoje(t *testing.T) {
	agora := time.Date(2024, time.May, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-02", DataString(Hoje(agora)))
}
