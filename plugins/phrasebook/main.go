// Command phrasebook is an offline enrichment plugin. It fills week
// goals, chapter info, and practice notes from lesson titles using
// fixed phrase templates, so plans get readable prose without any
// network dependency.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-plugin"

	"courseforge/internal/modules/enrich/adapter/out/rpc"
	plandto "courseforge/internal/modules/plan/dto"
)

type server struct{}

func (s *server) GetMetadata(ctx context.Context, _ *rpc.Empty) (*rpc.Metadata, error) {
	return &rpc.Metadata{
		Name:         "phrasebook",
		Version:      "1.0.0",
		Capabilities: []string{"week_goals", "chapter_info", "practice_notes"},
	}, nil
}

func (s *server) ListCommands(ctx context.Context, _ *rpc.Empty) (*rpc.ListCommandsResponse, error) {
	return &rpc.ListCommandsResponse{Commands: []rpc.CommandDescriptor{
		{ID: "week_goals", Title: "Week goals", Description: "Write a learning goal for each week"},
		{ID: "chapter_info", Title: "Chapter info", Description: "Title each chapter and list its goals"},
		{ID: "practice_notes", Title: "Practice notes", Description: "Describe each practice session"},
	}}, nil
}

func (s *server) Enrich(ctx context.Context, req *rpc.EnrichRequest) (*rpc.EnrichResponse, error) {
	var plan plandto.Plan
	if err := json.Unmarshal([]byte(req.PlanJSON), &plan); err != nil {
		return &rpc.EnrichResponse{Stderr: err.Error(), ExitCode: 1}, nil
	}

	var payload any
	switch req.CommandID {
	case "week_goals":
		payload = map[string]any{"week_goals": weekGoals(plan)}
	case "chapter_info":
		payload = map[string]any{"chapters": chapterInfo(plan)}
	case "practice_notes":
		payload = map[string]any{"practice_notes": practiceNotes(plan)}
	default:
		return &rpc.EnrichResponse{Stderr: "unknown command " + req.CommandID, ExitCode: 1}, nil
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return &rpc.EnrichResponse{Stderr: err.Error(), ExitCode: 1}, nil
	}
	return &rpc.EnrichResponse{OutputJSON: string(out)}, nil
}

func weekGoals(plan plandto.Plan) map[int]string {
	goals := make(map[int]string, len(plan.Weeks))
	for _, w := range plan.Weeks {
		topics := weekTopics(w, 3)
		if len(topics) == 0 {
			continue
		}
		goals[w.Number] = fmt.Sprintf("Week %d Focus: %s", w.Number, joinTopics(topics))
	}
	return goals
}

func chapterInfo(plan plandto.Plan) map[string]map[string]string {
	chapters := map[string]map[string]string{}
	for _, w := range plan.Weeks {
		for _, ch := range w.Chapters {
			if ch.Review {
				continue
			}
			topics := chapterTopics(ch)
			if len(topics) == 0 {
				continue
			}
			chapters[ch.Number] = map[string]string{
				"title": topics[0],
				"goals": "Cover " + strings.Join(topics, "; "),
			}
		}
	}
	return chapters
}

func practiceNotes(plan plandto.Plan) map[string]string {
	notes := map[string]string{}
	for _, w := range plan.Weeks {
		for _, ch := range w.Chapters {
			hasPractice := false
			for _, it := range ch.Items {
				if it.Synthetic {
					hasPractice = true
					break
				}
			}
			if !hasPractice {
				continue
			}
			topics := chapterTopics(ch)
			if len(topics) == 0 {
				notes[ch.Number] = "Apply this chapter's ideas in a hands-on exercise"
				continue
			}
			notes[ch.Number] = fmt.Sprintf("Apply %s in a hands-on exercise", joinTopics(topics))
		}
	}
	return notes
}

// chapterTopics lists the real lesson titles of a chapter.
func chapterTopics(ch plandto.Chapter) []string {
	var topics []string
	for _, it := range ch.Items {
		if it.Synthetic || it.Structural {
			continue
		}
		topics = append(topics, strings.TrimSpace(it.Title))
	}
	return topics
}

func weekTopics(w plandto.Week, limit int) []string {
	var topics []string
	for _, ch := range w.Chapters {
		for _, topic := range chapterTopics(ch) {
			topics = append(topics, topic)
			if len(topics) == limit {
				return topics
			}
		}
	}
	return topics
}

func joinTopics(topics []string) string {
	switch len(topics) {
	case 0:
		return ""
	case 1:
		return topics[0]
	default:
		return strings.Join(topics[:len(topics)-1], ", ") + " and " + topics[len(topics)-1]
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rpc.HandshakeConfig,
		Plugins:         rpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
