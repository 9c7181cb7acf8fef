package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/logger"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/metrics"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info expect json",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "test",
				Console:  logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console writer enabled",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "test",
				Console:  logger.Console{Enabled: true, UseConsoleWriter: true, NoColor: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "trace with caller expect json",
			cfg: logger.Log{
				LogLevel:     "trace",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := captureStderr(t, tc.cfg)

			if !tc.shouldHaveOutPut {
				assert.Empty(t, out)
				return
			}

			assert.Contains(t, out, "this info message should be seen")

			if tc.outPutIsJSON {
				for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
					var entry map[string]any
					require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
					assert.Equal(t, "test", entry["app"])
				}
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "loud", AppName: "test"}, nil)
	require.Error(t, err)

	err = logger.Init(logger.Log{LogLevel: "info"}, nil)
	assert.ErrorIs(t, err, logger.ErrAppNameIsEmpty)
}

func TestFileLogger(t *testing.T) {
	dir := t.TempDir()
	m := metrics.New("test")

	err := logger.Init(logger.Log{
		LogLevel: "info",
		AppName:  "test",
		File: logger.LogFile{
			Enabled:  true,
			Path:     dir,
			InfoLog:  "info.log",
			ErrorLog: "error.log",
			MaxSize:  1,
		},
	}, m)
	require.NoError(t, err)

	log.Info().Msg("loaded")
	log.Warn().Err(errors.New("bad line")).Msg("skipped") //nolint:goerr113

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "loaded")
	assert.NotContains(t, string(info), "skipped")

	warn, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(warn), "bad line")

	n, err := testutil.GatherAndCount(m.Registry(), "naptr_editor_log_statements_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLevelWriter(t *testing.T) {
	var info, errs bytes.Buffer

	lw := &logger.LevelWriter{InfoWriter: &info, ErrorWriter: &errs}

	_, _ = lw.WriteLevel(zerolog.DebugLevel, []byte("d"))
	_, _ = lw.WriteLevel(zerolog.ErrorLevel, []byte("e"))
	_, _ = lw.WriteLevel(zerolog.Disabled, []byte("x"))
	_, _ = lw.Write([]byte("n"))

	assert.Equal(t, "dn", info.String())
	assert.Equal(t, "e", errs.String())
}

func captureStderr(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stderr := os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stderr = w

	require.NoError(t, logger.Init(cfg, nil))

	log.Info().Msg("this info message should be seen...")
	log.Debug().Msg("this debug message should not be seen...")

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stderr = stderr

	return <-outC
}
