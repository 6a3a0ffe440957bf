package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCredentials_MissingChatIDLogsFatalWithoutExit(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.ExitFunc = func(code int) { t.Fatalf("exit handler called with %d", code) }

	ok := checkCredentials(&config.AppConfig{PracticumToken: "p", TelegramToken: "t"}, log)

	assert.False(t, ok)
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.FatalLevel, hook.LastEntry().Level)
		var cfgErr *config.ConfigError
		assert.ErrorAs(t, hook.LastEntry().Data[logrus.ErrorKey].(error), &cfgErr)
	}
}

func TestCheckCredentials_AllPresent(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.ExitFunc = func(int) { t.Fatal("unexpected exit") }

	ok := checkCredentials(&config.AppConfig{PracticumToken: "p", TelegramToken: "t", TelegramChatID: "1"}, log)

	assert.True(t, ok)
	assert.Empty(t, hook.AllEntries())
}

func testConfig(endpoint string) *config.AppConfig {
	return &config.AppConfig{
		PracticumToken:    "p",
		TelegramToken:     "t",
		TelegramChatID:    "1",
		PracticumEndpoint: endpoint,
		TelegramAPIURL:    endpoint,
		HTTPTimeout:       time.Second,
		PollSchedule:      "@every 10m",
	}
}

func TestRun_MissingChatIDStopsBeforePolling(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	log, hook := test.NewNullLogger()
	log.ExitFunc = func(code int) { t.Fatalf("exit handler called with %d", code) }

	cfg := testConfig(srv.URL)
	cfg.TelegramChatID = ""
	// An unparsable schedule would fail run if the scheduler were ever built.
	cfg.PollSchedule = "whenever"

	err := run(context.Background(), cfg, log)

	require.NoError(t, err)
	assert.Zero(t, hits.Load())
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.FatalLevel, hook.LastEntry().Level)
}

func TestRun_InvalidScheduleIsReturned(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := testConfig("http://127.0.0.1:0")
	cfg.PollSchedule = "whenever"

	err := run(context.Background(), cfg, log)
	assert.ErrorContains(t, err, "poll schedule")
}

func TestRun_CancelledContextShutsDownCleanly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1}`))
	}))
	defer srv.Close()

	log, hook := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, testConfig(srv.URL), log)

	assert.NoError(t, err)
	assert.Equal(t, "Application shut down gracefully.", hook.LastEntry().Message)
}
