package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Sam", 6000)
	cfg.SetAssumption("home", "Interest Rate", "6.5")
	cfg.SetAssumption("car", "Loan Term", "6")
	cfg.Goals = []GoalConfig{{Category: "vacation", Target: 3000, By: "2026-06-01"}}

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Profile.Name, got.Profile.Name)
	assert.InDelta(t, cfg.Profile.MonthlyIncome, got.Profile.MonthlyIncome, 0.001)
	assert.Equal(t, "6.5", got.Assumptions["home"]["Interest Rate"])
	assert.Equal(t, "6", got.Assumptions["car"]["Loan Term"])
	require.Len(t, got.Goals, 1)
	assert.Equal(t, "vacation", got.Goals[0].Category)
	assert.Equal(t, cfg.Logging.Level, got.Logging.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Sam", 4000)

	assert.Equal(t, "Sam", cfg.Profile.Name)
	assert.InDelta(t, 4000, cfg.Profile.MonthlyIncome, 0.001)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Assumptions)
	assert.Empty(t, cfg.Goals)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("profile: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  monthly_income: 3500\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 3500, cfg.Profile.MonthlyIncome, 0.001)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.NotNil(t, cfg.Assumptions)
}

func TestSaveErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", FileName)
	err := Save(path, Default("", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Sam", 6000)
	cfg.SetAssumption("home", "Down Payment", "10")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "monthly_income: 6000")
	assert.Contains(t, contents, "Down Payment: \"10\"")
	assert.Contains(t, contents, "level: warn")
}

func TestEditsAreSorted(t *testing.T) {
	cfg := Default("", 0)
	cfg.SetAssumption("home", "Loan Term", "15")
	cfg.SetAssumption("car", "Interest Rate", "4")
	cfg.SetAssumption("home", "Down Payment", "25")

	edits := cfg.Edits()
	require.Len(t, edits, 3)
	assert.Equal(t, AssumptionEdit{CategoryID: "car", Title: "Interest Rate", Text: "4"}, edits[0])
	assert.Equal(t, AssumptionEdit{CategoryID: "home", Title: "Down Payment", Text: "25"}, edits[1])
	assert.Equal(t, AssumptionEdit{CategoryID: "home", Title: "Loan Term", Text: "15"}, edits[2])
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, FileName, Path())

	t.Setenv(EnvPath, "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", Path())
}
