package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mfreeman451/cohesity-checks/pkg/alerts"
	"github.com/mfreeman451/cohesity-checks/pkg/config"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookAlertersDiscordFormat(t *testing.T) {
	bodies := make(chan []byte, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}

		bodies <- b

		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	out := webhookAlerters([]config.WebhookConfig{
		{Enabled: false, URL: "http://disabled.local"},
		{Enabled: true, URL: srv.URL, Format: config.WebhookFormatDiscord},
	})
	require.Len(t, out, 1)
	assert.True(t, out[0].IsEnabled())

	res := &nagios.Result{Name: "CLUSTER STORAGE", State: nagios.StateWarning, Summary: "Storage used is 82%"}
	require.NoError(t, out[0].Alert(context.Background(), alerts.NewTransitionAlert("c1", "storage", nagios.StateOK, res)))

	var payload struct {
		Embeds []json.RawMessage `json:"embeds"`
	}
	require.NoError(t, json.Unmarshal(<-bodies, &payload))
	assert.Len(t, payload.Embeds, 1)
}
