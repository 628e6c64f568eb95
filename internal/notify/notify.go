package notify

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Notifier delivers a single plain-text message.
type Notifier interface {
	Notify(message string) error
}

// NtfyNotifier publishes messages to a topic on an ntfy server.
type NtfyNotifier struct {
	Client *http.Client
	Server string
	Topic  string
}

func NewNtfyNotifier(server, topic string, timeout time.Duration) *NtfyNotifier {
	return &NtfyNotifier{
		Client: &http.Client{Timeout: timeout},
		Server: server,
		Topic:  topic,
	}
}

func (n *NtfyNotifier) Notify(message string) error {
	endpoint := strings.TrimRight(n.Server, "/") + "/" + n.Topic

	resp, err := n.Client.Post(endpoint, "text/plain", strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("post to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post to %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	return nil
}

// ForTopic selects the delivery sink once at startup: the ntfy server
// when a topic is configured, the local writer otherwise. An empty
// topic is a valid operating mode (dry run), not an error.
func ForTopic(server, topic string, timeout time.Duration, out io.Writer) Notifier {
	if topic == "" {
		return &WriterNotifier{Out: out}
	}
	return NewNtfyNotifier(server, topic, timeout)
}

// Deliver sends message through sink. When delivery fails the message
// is still written to fallback so the operator sees it, and the error
// is returned for the caller to surface.
func Deliver(sink Notifier, fallback io.Writer, message string) error {
	err := sink.Notify(message)
	if err != nil {
		fmt.Fprintln(fallback, message)
	}
	return err
}

// WriterNotifier prints the message to a local stream. Used when no
// topic is configured, and as the fallback when delivery fails so the
// operator still sees the message.
type WriterNotifier struct {
	Out io.Writer
}

func (n *WriterNotifier) Notify(message string) error {
	_, err := fmt.Fprintln(n.Out, message)
	return err
}
