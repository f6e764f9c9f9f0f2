package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courseforge/internal/modules/enrich/domain"
)

func writeBinary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugin")
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	return path
}

func TestVerifyChecksumMatches(t *testing.T) {
	t.Parallel()

	path := writeBinary(t, "plugin bytes")
	sum := sha256.Sum256([]byte("plugin bytes"))
	manifest := domain.Manifest{
		Name:   "p",
		Binary: path,
		SHA256: strings.ToUpper(hex.EncodeToString(sum[:])),
	}
	if err := NewEnrichService().VerifyChecksum(manifest); err != nil {
		t.Fatalf("VerifyChecksum: %v", err)
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	t.Parallel()

	manifest := domain.Manifest{
		Name:   "p",
		Binary: writeBinary(t, "plugin bytes"),
		SHA256: strings.Repeat("ab", 32),
	}
	err := NewEnrichService().VerifyChecksum(manifest)
	if !errors.Is(err, domain.ErrChecksum) {
		t.Fatalf("err = %v, want ErrChecksum", err)
	}
}

func TestVerifyChecksumSkippedWhenUnpinned(t *testing.T) {
	t.Parallel()

	manifest := domain.Manifest{Name: "p", Binary: "/does/not/exist"}
	if err := NewEnrichService().VerifyChecksum(manifest); err != nil {
		t.Fatalf("VerifyChecksum: %v", err)
	}
}

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	payload, err := NewEnrichService().DecodePayload(domain.EnrichResult{
		OutputJSON: `{"week_goals":{"2":"Master interfaces"}}`,
	})
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if payload.WeekGoals[2] != "Master interfaces" {
		t.Fatalf("week goals = %+v", payload.WeekGoals)
	}
}

func TestDecodePayloadFailedPlugin(t *testing.T) {
	t.Parallel()

	_, err := NewEnrichService().DecodePayload(domain.EnrichResult{ExitCode: 3, Stderr: "boom"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v, want exit failure carrying stderr", err)
	}
}
