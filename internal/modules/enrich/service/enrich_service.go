package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"courseforge/internal/modules/enrich/domain"
)

// EnrichService holds the plugin-independent parts of enrichment:
// binary verification and payload handling.
type EnrichService struct{}

func NewEnrichService() *EnrichService {
	return &EnrichService{}
}

// VerifyChecksum compares the manifest's pinned sha256 against the
// binary on disk. Manifests without a pin pass.
func (s *EnrichService) VerifyChecksum(manifest domain.Manifest) error {
	if manifest.SHA256 == "" {
		return nil
	}
	f, err := os.Open(manifest.Binary)
	if err != nil {
		return fmt.Errorf("open plugin binary: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("hash plugin binary: %w", err)
	}
	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(got, manifest.SHA256) {
		return fmt.Errorf("%w: %s", domain.ErrChecksum, manifest.Name)
	}
	return nil
}

// DecodePayload parses a plugin's output into a decoration payload.
func (s *EnrichService) DecodePayload(result domain.EnrichResult) (domain.DecorationPayload, error) {
	if result.ExitCode != 0 {
		return domain.DecorationPayload{}, fmt.Errorf("plugin exited with code %d: %s", result.ExitCode, result.Stderr)
	}
	var payload domain.DecorationPayload
	if err := json.Unmarshal([]byte(result.OutputJSON), &payload); err != nil {
		return domain.DecorationPayload{}, fmt.Errorf("decode plugin output: %w", err)
	}
	return payload, nil
}
