package in

import (
	"context"

	"courseforge/internal/modules/enrich/dto"
	plandto "courseforge/internal/modules/plan/dto"
)

// Enricher is the enrich module's inbound surface.
type Enricher interface {
	Plugins(ctx context.Context) ([]dto.PluginInfo, error)
	Commands(ctx context.Context, pluginName string) ([]dto.Command, error)
	Doctor(ctx context.Context) ([]dto.DoctorEntry, error)
	Run(ctx context.Context, cmd dto.RunCommand) (plandto.Plan, error)
}
