package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:3000",
		"-request-timeout", "20s",
		"-admin-id", "A1",
		"-d", "cache.db",
		"-refresh-interval", "1m",
		"-export-dir", "/tmp",
		"-log-file", "client.log",
		"-listen", "127.0.0.1:4000",
		"-seed", "seed.xlsx",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "A1", cfg.App.AdminID)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp", cfg.App.ExportDir)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "127.0.0.1:4000", cfg.FakeAPI.Address)
	assert.Equal(t, "seed.xlsx", cfg.FakeAPI.SeedFile)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.FakeAPI.Address)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "localhost", in: "localhost:8080", want: "localhost:8080"},
		{name: "ip", in: "127.0.0.1:3000", want: "127.0.0.1:3000"},
		{name: "all interfaces", in: ":3000", want: ":3000"},
		{name: "no port", in: "localhost", wantErr: true},
		{name: "bad port", in: "localhost:http", wantErr: true},
		{name: "zero port", in: "localhost:0", wantErr: true},
		{name: "bad host", in: "portal:3000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
