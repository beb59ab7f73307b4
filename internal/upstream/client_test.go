package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/areawatch/areawatch-core/internal/infrastructure/config"
	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/sensor"
)

// newTestClient builds a Client whose services all point at the test server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.UpstreamConfig{
		HomeURL:        server.URL,
		DataURL:        server.URL,
		HardwareURL:    server.URL,
		AccountsURL:    server.URL,
		RequestTimeout: 2,
	}
	return New(cfg, logging.Default())
}

func TestFetchSiteContentMergesDefaults(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/home" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"config": {"domain": "supermarket"}}`))
	}))

	content, err := client.FetchSiteContent(context.Background())
	if err != nil {
		t.Fatalf("FetchSiteContent: %v", err)
	}
	if content.Config.Domain != "supermarket" {
		t.Errorf("domain = %q, want supermarket", content.Config.Domain)
	}
	if content.Config.LoginText == "" {
		t.Error("default login text not merged in")
	}
	if content.Theme.Primary == "" {
		t.Error("default theme not merged in")
	}
}

func TestFetchDeviceConfigs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"configs": [
			{"deviceId": "d1", "readableLabel": "Luggage-01", "deviceKind": 2, "groupId": 7},
			{"deviceId": "d2", "readableLabel": "Temp Probe", "deviceKind": 1, "groupId": 7}
		]}`))
	}))

	configs, err := client.FetchDeviceConfigs(context.Background())
	if err != nil {
		t.Fatalf("FetchDeviceConfigs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("configs = %d, want 2", len(configs))
	}
	if configs[0].RawLabel != "Luggage-01" || configs[0].Kind != sensor.KindOccupancy {
		t.Errorf("configs[0] = %+v", configs[0])
	}
}

func TestFetchDeviceConfigsMissingFieldKeepsLastGood(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	}))

	_, err := client.FetchDeviceConfigs(context.Background())
	if !errors.Is(err, ErrNoDeviceConfigs) {
		t.Errorf("error = %v, want ErrNoDeviceConfigs", err)
	}
}

func TestFetchSummary(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"3": {"user": {"count": 2, "id": ["8", "9"]}, "environment": {"temperature": 21.5}}
		}`))
	}))

	snapshots, err := client.FetchSummary(context.Background())
	if err != nil {
		t.Fatalf("FetchSummary: %v", err)
	}
	area := snapshots["3"]
	if area == nil || area.Tracker == nil {
		t.Fatal("area 3 missing from summary")
	}
	if area.AreaID != "3" {
		t.Errorf("area id = %q", area.AreaID)
	}
	if got := area.Tracker.Occupancy[sensor.KeyUser].Count; got != 2 {
		t.Errorf("user count = %d, want 2", got)
	}
}

func TestFetchSummaryStatusError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	_, err := client.FetchSummary(context.Background())
	if !errors.Is(err, ErrStatus) {
		t.Errorf("error = %v, want ErrStatus", err)
	}
}

func TestFetchMessages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_messages" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages": [
			{"message_id": "m1", "sender_email": "ops@example.com", "left_message": "hello", "time_sent": "2026-03-01T12:00:00Z"}
		]}`))
	}))

	messages, err := client.FetchMessages(context.Background())
	if err != nil {
		t.Fatalf("FetchMessages: %v", err)
	}
	if len(messages) != 1 || messages[0].Body != "hello" {
		t.Errorf("messages = %+v", messages)
	}
}

func TestValidateSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			http.Error(w, "nope", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"uid": "u-42", "authority": "admin"}`))
	}))

	session, err := client.ValidateSession(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("ValidateSession: %v", err)
	}
	if session.UID != "u-42" || session.Authority != "admin" {
		t.Errorf("session = %+v", session)
	}

	if _, err := client.ValidateSession(context.Background(), "bad-token"); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("error = %v, want ErrSessionInvalid", err)
	}
}
