package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

import (
	"fmt"
	"runtime"
)

// UserAgentProvider supplies the User-Agent header value for outgoing requests.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgentProvider always returns the User-Agent it was created with.
type StaticUserAgentProvider struct {
	userAgent string
}

// NewStaticUserAgentProvider creates a provider returning userAgent.
// An empty userAgent is replaced with one derived from the product name and version.
func NewStaticUserAgentProvider(userAgent, product, version string) UserAgentProvider {
	if userAgent == "" {
		userAgent = BuildUserAgent(product, version)
	}

	return &StaticUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *StaticUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// BuildUserAgent formats a product token such as "siren-grabber/1.0.0 (linux; amd64)".
func BuildUserAgent(product, version string) string {
	return fmt.Sprintf("%s/%s (%s; %s)", product, version, runtime.GOOS, runtime.GOARCH)
}
