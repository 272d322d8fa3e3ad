package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(content), 0600)
	require.NoError(t, err)
	return configFile
}

func TestLoadEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  chain_name: "base-sepolia"
  contract_address: "0x1234567890123456789012345678901234567890"
  start_block: 1000
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "ws://localhost:8545", cfg.Ethereum.WebSocketURL)
				assert.Equal(t, "base-sepolia", cfg.Ethereum.ChainName)
				assert.Equal(t, "0x1234567890123456789012345678901234567890", cfg.Ethereum.ContractAddress)
				assert.Equal(t, uint64(1000), cfg.Ethereum.StartBlock)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ethereum:
  websocket_url: "ws://localhost:8545"
  contract_address: "0x1234567890123456789012345678901234567890"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "VEHICLE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "base-mainnet", cfg.Ethereum.ChainName)
			},
		},
		{
			name: "missing websocket url",
			configFile: `
database:
  host: localhost
ethereum:
  contract_address: "0x1234567890123456789012345678901234567890"
`,
			expectError: true,
		},
		{
			name: "missing contract address",
			configFile: `
database:
  host: localhost
ethereum:
  websocket_url: "ws://localhost:8545"
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadEmitterConfig(writeConfigFile(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadBridgeConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadBridgeConfig(writeConfigFile(t, `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`), "")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "VEHICLE_EVENTS", cfg.NATS.StreamName)
		assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
		assert.Equal(t, "30s", cfg.NATS.AckWait.String())
		assert.Equal(t, 3, cfg.NATS.MaxDeliver)
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		cfg, err := LoadBridgeConfig(writeConfigFile(t, `
database:
  host: localhost
nats:
  url: "nats://localhost:4222"
  consumer_name: "custom-bridge"
  ack_wait: "1m"
  max_deliver: 5
`), "")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "custom-bridge", cfg.NATS.ConsumerName)
		assert.Equal(t, "1m0s", cfg.NATS.AckWait.String())
		assert.Equal(t, 5, cfg.NATS.MaxDeliver)
	})
}

func TestLoadSweeperConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfigFile(t, `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`), "")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "1m0s", cfg.Sweep.Interval.String())
		assert.Equal(t, 10, cfg.Sweep.BatchSize)
		assert.Equal(t, 5, cfg.Sweep.Worker.WorkerPoolSize)
		assert.Equal(t, 100, cfg.Sweep.Worker.WorkerQueueSize)
		assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	})

	t.Run("missing database host", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfigFile(t, `
database:
  dbname: testdb
`), "")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfigFile(t, `
database:
  host: localhost
`), "")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadAPIConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadAPIConfig(writeConfigFile(t, `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`), "")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 10, cfg.Server.ReadTimeout)
		assert.Equal(t, 120, cfg.Server.IdleTimeout)
		assert.False(t, cfg.Debug)
	})

	t.Run("auth config", func(t *testing.T) {
		cfg, err := LoadAPIConfig(writeConfigFile(t, `
database:
  host: localhost
auth:
  jwt_public_key: "test-key"
  api_keys:
    - key-one
    - key-two
`), "")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
		assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "carstarz",
		Password: "secret",
		DBName:   "registry",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=carstarz password=secret dbname=registry sslmode=require",
		cfg.DSN())
}
