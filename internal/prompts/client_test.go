package prompts_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voxpick/internal/prompts"
)

// fakeGradio stands in for the prompt server's four-step exchange.
func fakeGradio(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/gradio_api/upload", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["files"]
		if len(files) != 1 {
			http.Error(w, "expected one file", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode([]string{"/tmp/gradio/" + files[0].Filename})
	})
	mux.HandleFunc("/gradio_api/call/save_prompt", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.Data) != 3 {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"event_id": "ev-1"})
	})
	mux.HandleFunc("/gradio_api/call/save_prompt/ev-1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "event: generating\ndata: null\n\n")
		fmt.Fprint(w, "event: complete\ndata: [{\"path\": \"/tmp/gradio/out.pt\"}]\n\n")
	})
	mux.HandleFunc("/gradio_api/file=/tmp/gradio/out.pt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("PTDATA"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSavePromptFollowsProtocol(t *testing.T) {
	server := fakeGradio(t)
	client := prompts.NewClient(server.URL, 5*time.Second)

	clip := filepath.Join(t.TempDir(), "ref.wav")
	if err := os.WriteFile(clip, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	path, err := client.SavePrompt(context.Background(), clip, "蕉蕉蕉")
	if err != nil {
		t.Fatalf("SavePrompt failed: %v", err)
	}
	if path != "/tmp/gradio/out.pt" {
		t.Fatalf("unexpected server path: %q", path)
	}
}

func TestDownloadWritesFile(t *testing.T) {
	server := fakeGradio(t)
	client := prompts.NewClient(server.URL, 5*time.Second)

	dest := filepath.Join(t.TempDir(), "zh-voice-happy.pt")
	if err := client.Download(context.Background(), "/tmp/gradio/out.pt", dest); err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "PTDATA" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestSavePromptReportsServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := prompts.NewClient(server.URL, 5*time.Second)
	clip := filepath.Join(t.TempDir(), "ref.wav")
	if err := os.WriteFile(clip, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	_, err := client.SavePrompt(context.Background(), clip, "x")
	if err == nil {
		t.Fatal("expected error from failing server")
	}
	if !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSavePromptStreamWithoutOutputFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gradio_api/upload", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]string{"/tmp/up.wav"})
	})
	mux.HandleFunc("/gradio_api/call/save_prompt", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"event_id": "ev-2"})
	})
	mux.HandleFunc("/gradio_api/call/save_prompt/ev-2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "event: error\ndata: null\n\n")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := prompts.NewClient(server.URL, 5*time.Second)
	clip := filepath.Join(t.TempDir(), "ref.wav")
	if err := os.WriteFile(clip, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	_, err := client.SavePrompt(context.Background(), clip, "x")
	if err == nil || !strings.Contains(err.Error(), "without an output file") {
		t.Fatalf("expected missing-output error, got %v", err)
	}
}
