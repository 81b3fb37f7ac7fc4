package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_base_url": "https://jobs.example.com/api",
		"request_timeout_seconds": 5
	}`), 0o600))

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", file}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://jobs.example.com/api", c.APIBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	// not named in the file, default survives
	assert.Equal(t, "jobdesk.db", c.StateDBPath)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", "does-not-exist.json"}

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(&c) })
}
