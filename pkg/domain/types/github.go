package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
	GitHubToken         string
	RequestID           string
)

func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}

// NewBranchSuffix returns 8 lowercase hex characters of a random UUID.
func NewBranchSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
