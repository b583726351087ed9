package request

import (
	"encoding/json"
	"errors"
	"strings"
)

// DepositCreateRequest is the documented envelope for POST /v1/deposits/{quote_id}.
//
// `provider_payload` is forwarded to Mercado Pago as-is, so its schema follows
// the provider. A bare provider payload without the envelope is accepted too.
type DepositCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload" swaggertype:"object"`
}

var ErrInvalidDepositBody = errors.New("request body is not valid json")

// ParseDepositPayload extracts the provider payload from a request body.
func ParseDepositPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidDepositBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
