package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"courseforge/internal/modules/enrich/domain"
	"courseforge/internal/modules/enrich/dto"
	"courseforge/internal/modules/enrich/port/in"
	"courseforge/internal/modules/enrich/port/out"
	"courseforge/internal/modules/enrich/service"
	plandto "courseforge/internal/modules/plan/dto"
	planin "courseforge/internal/modules/plan/port/in"
)

// Enricher runs registered plugins against a course's plan and feeds
// their output back through the planner's decorate operation.
type Enricher struct {
	service       *service.EnrichService
	manifests     out.ManifestStore
	host          out.Host
	planner       planin.Planner
	workspacePath string
}

func NewEnricher(
	svc *service.EnrichService,
	manifests out.ManifestStore,
	host out.Host,
	planner planin.Planner,
	workspacePath string,
) *Enricher {
	return &Enricher{
		service:       svc,
		manifests:     manifests,
		host:          host,
		planner:       planner,
		workspacePath: workspacePath,
	}
}

var _ in.Enricher = (*Enricher)(nil)

func (e *Enricher) Plugins(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := e.manifests.Load(ctx)
	if err != nil {
		return nil, err
	}
	plugins := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		plugins = append(plugins, dto.PluginInfo{Name: m.Name, Binary: m.Binary, Enabled: m.Enabled})
	}
	return plugins, nil
}

func (e *Enricher) Commands(ctx context.Context, pluginName string) ([]dto.Command, error) {
	manifest, err := e.findManifest(ctx, pluginName)
	if err != nil {
		return nil, err
	}
	descriptors, err := e.host.ListCommands(ctx, manifest)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", pluginName, err)
	}
	commands := make([]dto.Command, 0, len(descriptors))
	for _, d := range descriptors {
		commands = append(commands, dto.Command{ID: d.ID, Title: d.Title, Description: d.Description})
	}
	return commands, nil
}

func (e *Enricher) Doctor(ctx context.Context) ([]dto.DoctorEntry, error) {
	manifests, err := e.manifests.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.DoctorEntry, 0, len(manifests))
	for _, m := range manifests {
		entries = append(entries, e.check(ctx, m))
	}
	return entries, nil
}

func (e *Enricher) Run(ctx context.Context, cmd dto.RunCommand) (plandto.Plan, error) {
	manifest, err := e.findManifest(ctx, cmd.Plugin)
	if err != nil {
		return plandto.Plan{}, err
	}
	if err := e.service.VerifyChecksum(manifest); err != nil {
		return plandto.Plan{}, err
	}

	descriptors, err := e.host.ListCommands(ctx, manifest)
	if err != nil {
		return plandto.Plan{}, fmt.Errorf("plugin %s: %w", cmd.Plugin, err)
	}
	offered := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		offered[d.ID] = true
	}

	commandIDs := cmd.Commands
	if len(commandIDs) == 0 {
		for _, d := range descriptors {
			commandIDs = append(commandIDs, d.ID)
		}
	} else {
		for _, id := range commandIDs {
			if !offered[id] {
				return plandto.Plan{}, fmt.Errorf("%w: %s does not offer %s", domain.ErrUnknownCommand, cmd.Plugin, id)
			}
		}
	}

	plan, err := e.planner.Get(ctx, cmd.CourseSlug)
	if err != nil {
		return plandto.Plan{}, err
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return plandto.Plan{}, fmt.Errorf("encode plan: %w", err)
	}

	var merged domain.DecorationPayload
	for _, id := range commandIDs {
		result, err := e.host.Enrich(ctx, manifest, domain.EnrichRequest{
			CommandID: id,
			PlanJSON:  string(planJSON),
			Context: domain.EnrichContext{
				WorkspacePath: e.workspacePath,
				CourseSlug:    cmd.CourseSlug,
			},
		})
		if err != nil {
			return plandto.Plan{}, fmt.Errorf("command %s: %w", id, err)
		}
		payload, err := e.service.DecodePayload(result)
		if err != nil {
			return plandto.Plan{}, fmt.Errorf("command %s: %w", id, err)
		}
		merged.Merge(payload)
	}

	return e.planner.Decorate(ctx, cmd.CourseSlug, toDecoration(merged))
}

func (e *Enricher) check(ctx context.Context, m domain.Manifest) dto.DoctorEntry {
	entry := dto.DoctorEntry{Plugin: m.Name}
	if !m.Enabled {
		entry.Detail = "disabled"
		return entry
	}
	if err := e.service.VerifyChecksum(m); err != nil {
		entry.Detail = err.Error()
		return entry
	}
	meta, err := e.host.GetMetadata(ctx, m)
	if err != nil {
		entry.Detail = err.Error()
		return entry
	}
	entry.OK = true
	entry.Detail = fmt.Sprintf("%s %s", meta.Name, meta.Version)
	return entry
}

func (e *Enricher) findManifest(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := e.manifests.Load(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, m := range manifests {
		if m.Name == name {
			if !m.Enabled {
				return domain.Manifest{}, fmt.Errorf("%w: %s is disabled", domain.ErrUnknownPlugin, name)
			}
			return m, nil
		}
	}
	return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrUnknownPlugin, name)
}

func toDecoration(p domain.DecorationPayload) planin.Decoration {
	deco := planin.Decoration{
		WeekGoals:     p.WeekGoals,
		PracticeNotes: p.PracticeNotes,
	}
	if len(p.Chapters) > 0 {
		deco.Chapters = make(map[string]planin.ChapterDecoration, len(p.Chapters))
		for num, ch := range p.Chapters {
			deco.Chapters[num] = planin.ChapterDecoration{Title: ch.Title, Goals: ch.Goals}
		}
	}
	return deco
}
