package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"orgboard/internal/core/errs"
)

// IntrospectValidator asks an external identity provider whether a
// credential is valid and which subject it represents.
type IntrospectValidator struct {
	baseURL string
	client  *http.Client
}

func NewIntrospectValidator(baseURL string) *IntrospectValidator {
	return &IntrospectValidator{baseURL: baseURL, client: http.DefaultClient}
}

func (v *IntrospectValidator) Validate(ctx context.Context, token string) (string, error) {
	jsonBody, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/introspect", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.ErrInvalidToken
	}

	var result struct {
		Active  bool   `json:"active"`
		Subject string `json:"sub"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if !result.Active || result.Subject == "" {
		return "", errs.ErrInvalidToken
	}

	return result.Subject, nil
}
