// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"fmt"
	"strings"
	"time"
)

// Kinds accepted by New.
const (
	KindMock   = "mock"
	KindSigned = "signed"
	KindHTTP   = "http"
)

// Settings selects and configures a backend.
type Settings struct {
	Kind       string
	BaseURL    string
	Endpoints  Endpoints
	SigningKey string
	TokenTTL   time.Duration
}

// New creates the backend named by s.Kind. An empty kind means the mock.
func New(s Settings) (API, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", KindMock:
		return NewMock(), nil
	case KindSigned:
		return NewSigned([]byte(s.SigningKey), s.TokenTTL)
	case KindHTTP:
		if strings.TrimSpace(s.BaseURL) == "" {
			return nil, fmt.Errorf("http backend needs a base URL")
		}
		return NewHTTP(s.BaseURL, s.Endpoints), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want mock, signed or http)", s.Kind)
}
