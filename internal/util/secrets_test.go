package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"grpvtracker/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_LoadSecrets(t *testing.T) {
	writeSecrets := func(t *testing.T, body string) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "secrets-test.json"), []byte(body), 0o644))

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { os.Chdir(wd) })
		t.Setenv("GRPV_ENV", "test")
	}

	t.Run("absent blocks fall back to defaults", func(t *testing.T) {
		writeSecrets(t, `{"jwt": "decode-token"}`)

		secrets, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, DefaultScoringConfig(), secrets.Scoring)
		require.Equal(t, DefaultProviderConfig(), secrets.Provider)
	})

	t.Run("partial scoring block keeps defaults for omitted fields", func(t *testing.T) {
		writeSecrets(t, `{
			"scoring": {
				"categoryWeights": {
					"GROWTH": 0.40,
					"RISK": 0.20,
					"PROFITABILITY": 0.20,
					"VALUATION": 0.20
				}
			}
		}`)

		secrets, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, 0.40, secrets.Scoring.CategoryWeights[domain.Category_Growth])
		require.Equal(t, 70.0, secrets.Scoring.BuyThreshold)
		require.Equal(t, 40.0, secrets.Scoring.SellThreshold)
		require.Equal(t, 0.25, secrets.Scoring.DownsideCeiling)
	})

	t.Run("configured thresholds survive absent weights", func(t *testing.T) {
		writeSecrets(t, `{"scoring": {"buyThreshold": 80}}`)

		secrets, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, 80.0, secrets.Scoring.BuyThreshold)
		require.Equal(t, DefaultScoringConfig().CategoryWeights, secrets.Scoring.CategoryWeights)
	})

	t.Run("invalid merged scoring stops startup", func(t *testing.T) {
		writeSecrets(t, `{"scoring": {"sellThreshold": 90}}`)

		_, err := LoadSecrets()
		require.Error(t, err)
		require.True(t, domain.IsKind(err, domain.ErrorKind_Validation))
	})
}

func Test_ConfigUnmarshal(t *testing.T) {
	t.Run("explicit zero retries is kept", func(t *testing.T) {
		cfg := ProviderConfig{}
		require.NoError(t, json.Unmarshal([]byte(`{"maxRetries": 0}`), &cfg))
		require.Equal(t, 0, cfg.MaxRetries)
		require.Equal(t, 5000, cfg.TimeoutMs)
	})

	t.Run("explicit zero sell threshold is kept", func(t *testing.T) {
		cfg := ScoringConfig{}
		require.NoError(t, json.Unmarshal([]byte(`{"sellThreshold": 0}`), &cfg))
		require.Equal(t, 0.0, cfg.SellThreshold)
		require.Equal(t, 70.0, cfg.BuyThreshold)
	})

	t.Run("empty block is all defaults", func(t *testing.T) {
		cfg := ScoringConfig{}
		require.NoError(t, json.Unmarshal([]byte(`{}`), &cfg))
		require.Equal(t, DefaultScoringConfig(), cfg)
	})
}

func Test_ScoringConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultScoringConfig().Validate())
	})

	t.Run("weights must cover every category", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		delete(cfg.CategoryWeights, domain.Category_Valuation)
		require.Error(t, cfg.Validate())
	})

	t.Run("weights must sum to one", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.CategoryWeights[domain.Category_Growth] = 0.50
		err := cfg.Validate()
		require.Error(t, err)
		require.True(t, domain.IsKind(err, domain.ErrorKind_Validation))
	})

	t.Run("negative weight is rejected", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.CategoryWeights[domain.Category_Growth] = -0.30
		cfg.CategoryWeights[domain.Category_Risk] = 0.85
		require.Error(t, cfg.Validate())
	})

	t.Run("sell threshold must sit below buy", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.SellThreshold = 80
		require.Error(t, cfg.Validate())
	})

	t.Run("downside ceiling must stay under one", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.DownsideCeiling = 1.5
		require.Error(t, cfg.Validate())
	})

	t.Run("upside bounds must be ordered", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.UpsideFactorMin = 0.6
		require.Error(t, cfg.Validate())
	})
}
