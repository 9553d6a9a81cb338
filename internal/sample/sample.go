package sample

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/w-h-a/deploy-relay/internal/event"
)

// RunSampleClient posts the built-in samples matching eventType ("all" or
// empty for every sample) to the relay at address and reports each response
// to out.
func RunSampleClient(client *http.Client, out io.Writer, address string, webhookURL string, eventType string, pause time.Duration) error {
	target := strings.TrimSuffix(address, "/") + "/webhook"

	if len(webhookURL) > 0 {
		target += "?webhook_url=" + url.QueryEscape(webhookURL)
	}

	sent := 0

	for _, s := range Samples() {
		if len(eventType) > 0 && eventType != "all" && event.Type(eventType) != s.Type {
			continue
		}

		if sent > 0 && pause > 0 {
			time.Sleep(pause)
		}

		sent++

		fmt.Fprintf(out, "Testing webhook with payload type: %s\n", s.Type)

		bs, err := json.Marshal(envelope(s, time.Now()))
		if err != nil {
			return err
		}

		rsp, err := client.Post(target, "application/json", bytes.NewReader(bs))
		if err != nil {
			fmt.Fprintf(out, "Error making request: %v\n", err)
			continue
		}

		body, _ := io.ReadAll(rsp.Body)
		rsp.Body.Close()

		fmt.Fprintf(out, "Response status: %d\n", rsp.StatusCode)
		fmt.Fprintf(out, "Response body: %s\n", string(body))
		fmt.Fprintln(out, "---")
	}

	if sent == 0 {
		return fmt.Errorf("no sample for type %q", eventType)
	}

	return nil
}
