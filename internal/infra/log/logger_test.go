package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"nativoseo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Build(config.Log{Level: "info"}, &buf, "nativoseo")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hola", slog.String("k", "v"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hola", record["msg"])
	assert.Equal(t, "nativoseo", record["service"])
	assert.Equal(t, "v", record["k"])
}

func TestBuild_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Build(config.Log{Level: "warn", Pretty: true}, &buf, "")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=visible")
}
