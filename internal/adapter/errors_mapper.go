package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var status error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		status = ErrBadRequest
	case http.StatusUnauthorized:
		status = ErrUnauthorized
	case http.StatusForbidden:
		status = ErrForbidden
	case http.StatusNotFound:
		status = ErrNotFound
	case http.StatusConflict:
		status = ErrConflict
	case http.StatusBadGateway:
		status = ErrBadGateway
	case http.StatusInternalServerError:
		status = ErrInternalServerError
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %w: %s", ErrTransport, status, body)
}
