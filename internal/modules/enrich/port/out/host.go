package out

import (
	"context"

	"courseforge/internal/modules/enrich/domain"
)

// Host starts plugin processes and speaks the rpc contract to them.
type Host interface {
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListCommands(ctx context.Context, manifest domain.Manifest) ([]domain.CommandDescriptor, error)
	Enrich(ctx context.Context, manifest domain.Manifest, req domain.EnrichRequest) (domain.EnrichResult, error)
}

// ManifestStore loads the registered plugin manifests.
type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}
