package siren

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oshokin/siren-grabber/internal/errkind"
)

// fetchJSON fetches JSON from the URI built by joining the base URL with elements.
// Transport problems are classified as transport errors, undecodable bodies as decode errors.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, op string, elements ...string) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, elements...)
	if err != nil {
		return nil, errkind.Transport(op, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, errkind.Transport(op, err)
	}

	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errkind.Transport(op, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, errkind.Transport(op, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodySize+1))
	if err != nil {
		return nil, errkind.Transport(op, fmt.Errorf("failed to read response body: %w", err))
	}

	if len(body) > maxResponseBodySize {
		return nil, errkind.Transport(op, ErrResponseTooLarge)
	}

	var result T
	if err = json.Unmarshal(body, &result); err != nil {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, errkind.Decode(op, err)
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}

// checkEnvelope rejects a non-zero API code when strict checking is enabled.
func (c *ClientImpl) checkEnvelope(op string, envelope *Envelope) error {
	if !c.strictResponseCode || envelope.Code == 0 {
		return nil
	}

	return errkind.Transport(op, fmt.Errorf("%w: %d (%s)", ErrUnexpectedResponseCode, envelope.Code, envelope.Message))
}
