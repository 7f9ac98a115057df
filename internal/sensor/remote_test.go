package sensor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRemoteSensorRead(t *testing.T) {
	t.Run("should decode a healthy response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"temp_c": 18.5, "humidity": 52.0}`))
		}))
		defer server.Close()

		remote := NewRemoteSensor("bedroom", server.URL, 5*time.Second)

		reading, err := remote.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if reading.TemperatureC != 18.5 || reading.Humidity != 52.0 {
			t.Errorf("unexpected reading: %+v", reading)
		}
	})

	t.Run("should report zeros when the peer is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		remote := NewRemoteSensor("bedroom", url, time.Second)

		reading, err := remote.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if reading == nil {
			t.Fatal("expected a present zero reading, got absent")
		}

		if reading.TemperatureC != 0 || reading.Humidity != 0 {
			t.Errorf("expected a zero reading, got %+v", reading)
		}
	})

	t.Run("should propagate a malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		remote := NewRemoteSensor("bedroom", server.URL, 5*time.Second)

		_, err := remote.Read()
		if err == nil {
			t.Error("expected a decode error")
		}
	})
}
