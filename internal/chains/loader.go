package chains

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/compose-network/dispute-explorer/internal/logger"
	"github.com/pelletier/go-toml/v2"
)

const maxRegistryFileSize = 1 << 20

// Loader fetches superchain registry TOML files over HTTP or from disk.
type Loader struct {
	logger *slog.Logger
	client *http.Client
}

func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		logger: logger.Named("superchain_registry"),
		client: &http.Client{Timeout: timeout},
	}
}

// Load never fails; errors are captured in the returned RegistryInfo.
func (l *Loader) Load(ctx context.Context, rawURL string) RegistryInfo {
	cfg, err := l.Fetch(ctx, rawURL)
	if err != nil {
		l.logger.With("url", rawURL).With("err", err).Warn("failed to load superchain registry")
		return Failed(err)
	}
	return Loaded(cfg)
}

func (l *Loader) Fetch(ctx context.Context, rawURL string) (*SuperchainConfig, error) {
	l.logger.With("url", rawURL).Debug("fetching superchain registry")

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry url: %w", err)
	}

	var body []byte
	switch u.Scheme {
	case "file":
		body, err = readFile(u.Path)
	case "http", "https":
		body, err = l.get(ctx, rawURL)
	default:
		err = fmt.Errorf("unsupported registry url scheme %q", u.Scheme)
	}
	if err != nil {
		return nil, err
	}

	return ParseSuperchainConfig(body)
}

func ParseSuperchainConfig(data []byte) (*SuperchainConfig, error) {
	var cfg SuperchainConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal superchain registry: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch superchain registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRegistryFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read superchain registry file: %w", err)
	}
	return body, nil
}
