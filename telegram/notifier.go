// Package telegram implements post-run notification via the Telegram Bot
// API: the results file is uploaded as a document to a chat.
package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
)

// DefaultAPIBase is the production Telegram Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// DefaultTimeout bounds the upload; results files are small.
const DefaultTimeout = 30 * time.Second

// Ensure Notifier implements vega.Notifier at compile time.
var _ vega.Notifier = (*Notifier)(nil)

// Notifier delivers the results file to a Telegram chat using the bot
// sendDocument method.
type Notifier struct {
	token   string
	chatID  string
	apiBase string
	client  *http.Client
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAPIBase overrides the API endpoint. Used in tests.
func WithAPIBase(base string) Option {
	return func(n *Notifier) {
		n.apiBase = base
	}
}

// WithClient overrides the HTTP client.
func WithClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.client = client
	}
}

// NewNotifier creates a Notifier for the given bot token and chat.
func NewNotifier(token, chatID string, opts ...Option) *Notifier {
	n := &Notifier{
		token:   token,
		chatID:  chatID,
		apiBase: DefaultAPIBase,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify uploads the file at path as a document with the given caption.
func (n *Notifier) Notify(ctx context.Context, path, caption string) error {
	f, err := os.Open(path)
	if err != nil {
		return vega.Errorf(vega.ENOTFOUND, "results file %s: %v", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("chat_id", n.chatID); err != nil {
		return err
	}
	if caption != "" {
		if err := w.WriteField("caption", caption); err != nil {
			return err
		}
	}
	part, err := w.CreateFormFile("document", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendDocument", n.apiBase, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return vega.Errorf(vega.ETRANSIENT, "telegram sendDocument: HTTP %d: %s", resp.StatusCode, msg)
	}
	return nil
}
