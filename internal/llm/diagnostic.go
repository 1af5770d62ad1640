package llm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Diagnostic renders the most detailed description available for a completion error:
// the service's error body when the provider returned one, otherwise err itself.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		body, mErr := json.Marshal(apiErr)
		if mErr != nil {
			return apiErr.Error()
		}
		return fmt.Sprintf("HTTP %d: %s", apiErr.HTTPStatusCode, body)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}

	var gErr genai.APIError
	if errors.As(err, &gErr) {
		return fmt.Sprintf("HTTP %d %s: %s", gErr.Code, gErr.Status, gErr.Message)
	}

	return err.Error()
}
