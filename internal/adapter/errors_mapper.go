package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/aprasetyo/go-data-pengguna/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts the server's message from a JSON error body,
// falling back to the raw body text.
func errorMessage(resp *resty.Response) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(resp.Body()))
}
