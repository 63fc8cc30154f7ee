package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func TestNew_AdjuntaCampoService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "crm-pro"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "crm-pro", line["service"])
	assert.Equal(t, "arrancando", line["message"])
}

func TestNew_SinServiceNoAgregaElCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, ok := line["service"]
	assert.False(t, ok)
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Debug().Msg("no debería salir")
	assert.Empty(t, buf.Bytes())
}
