package prompts

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voxpick/internal/fileutil"
)

// Client talks to the Gradio server exposing the save_prompt endpoint.
//
// A call is a four-step exchange: upload the reference audio, invoke the
// endpoint with the uploaded file handle, follow the event stream until the
// generated file path appears, then download that file.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SavePrompt generates a prompt from the reference clip and returns the
// server-side path of the produced file.
func (c *Client) SavePrompt(ctx context.Context, clipPath, refText string) (string, error) {
	serverPath, err := c.upload(ctx, clipPath)
	if err != nil {
		return "", err
	}
	eventID, err := c.call(ctx, serverPath, refText)
	if err != nil {
		return "", err
	}
	return c.await(ctx, eventID)
}

func (c *Client) upload(ctx context.Context, clipPath string) (string, error) {
	file, err := os.Open(clipPath)
	if err != nil {
		return "", fmt.Errorf("open clip: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", filepath.Base(clipPath))
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read clip: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/gradio_api/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload clip: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload clip: unexpected status %s", resp.Status)
	}

	var paths []string
	if err := json.NewDecoder(resp.Body).Decode(&paths); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if len(paths) == 0 {
		return "", errors.New("upload clip: empty response")
	}
	return paths[0], nil
}

func (c *Client) call(ctx context.Context, serverPath, refText string) (string, error) {
	payload := map[string]any{
		"data": []any{
			map[string]any{
				"path": serverPath,
				"meta": map[string]any{"_type": "gradio.FileData"},
			},
			refText,
			false, // use_xvec
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/gradio_api/call/save_prompt", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("invoke save_prompt: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("invoke save_prompt: unexpected status %s", resp.Status)
	}

	var result struct {
		EventID string `json:"event_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode save_prompt response: %w", err)
	}
	if result.EventID == "" {
		return "", errors.New("invoke save_prompt: no event_id in response")
	}
	return result.EventID, nil
}

// await follows the server-sent event stream for the invocation until the
// generated file path shows up.
func (c *Client) await(ctx context.Context, eventID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gradio_api/call/save_prompt/"+eventID, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("follow save_prompt events: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("follow save_prompt events: unexpected status %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data: "))
		if payload == "" || payload == "null" {
			continue
		}

		var outputs []struct {
			Path string `json:"path"`
		}
		if err := json.Unmarshal([]byte(payload), &outputs); err != nil {
			continue
		}
		if len(outputs) > 0 && outputs[0].Path != "" {
			return outputs[0].Path, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read save_prompt events: %w", err)
	}
	return "", errors.New("save_prompt finished without an output file")
}

// Download fetches a server-side file and writes it to dest atomically.
func (c *Client) Download(ctx context.Context, serverPath, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gradio_api/file="+serverPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("download prompt file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download prompt file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read prompt file: %w", err)
	}
	return fileutil.WriteFileAtomic(dest, data, 0o644)
}
