package client

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// BackendError carries every GraphQL error the backend reported for one
// request. The message joins all of them so callers see every failure
// reason, not just the first.
type BackendError struct {
	Errors gqlerror.List `json:"errors"`
}

func (e *BackendError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, gqlErr := range e.Errors {
		messages = append(messages, gqlErr.Message)
	}

	return strings.Join(messages, ", ")
}

// HTTPError is the error when the response carries a non-2xx status and no
// parseable GraphQL error list.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Code, e.Message)
}

// response is a GraphQL layer response from a handler.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func parseResponse(resp *http.Response) (json.RawMessage, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		respBody, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode gzip: %w", err)
		}
		resp.Body = respBody
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	isStatusCodeOK := 200 <= resp.StatusCode && resp.StatusCode <= 299

	parsed := response{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		if !isStatusCodeOK {
			return nil, &HTTPError{Code: resp.StatusCode, Message: string(body)}
		}

		return nil, fmt.Errorf("failed to decode response %q: %w", body, err)
	}

	if len(parsed.Errors) > 0 {
		backendErr := &BackendError{}
		if err := json.Unmarshal(parsed.Errors, &backendErr.Errors); err != nil {
			return nil, fmt.Errorf("failed to decode response error %q: %w", body, err)
		}

		return nil, backendErr
	}

	if !isStatusCodeOK {
		return nil, &HTTPError{Code: resp.StatusCode, Message: string(body)}
	}

	return parsed.Data, nil
}
