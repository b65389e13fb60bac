package services

import (
	"fmt"
	"strings"

	"contentflow_go_backend/internal/catalog"
)

const maxHashtags = 20

// GeneratorService renders artifacts from the template catalog. Generation is
// pure and deterministic: identical requests always yield identical artifacts.
type GeneratorService interface {
	Generate(req GenerationRequest) Artifact
}

// DefaultGeneratorService implements GeneratorService
type DefaultGeneratorService struct {
	catalog *catalog.Catalog
}

// NewGeneratorService creates a new DefaultGeneratorService
func NewGeneratorService(c *catalog.Catalog) GeneratorService {
	return &DefaultGeneratorService{catalog: c}
}

func (s *DefaultGeneratorService) Generate(req GenerationRequest) Artifact {
	switch req.Type {
	case ContentTypeCaption:
		return Artifact{
			Type: ContentTypeCaption,
			Text: s.catalog.RenderCaption(req.Tone, req.Prompt),
		}
	case ContentTypeIdeas:
		return Artifact{Type: ContentTypeIdeas, Ideas: s.generateIdeas(req.Prompt)}
	case ContentTypeHashtags:
		return Artifact{Type: ContentTypeHashtags, Hashtags: s.generateHashtags(req.Prompt, req.Platform)}
	case ContentTypeScript:
		return Artifact{Type: ContentTypeScript, Script: s.generateScript(req.Prompt)}
	default:
		// Unreachable behind ParseContentType; kept as a defensive fallback.
		return Artifact{Type: req.Type, Text: "Conteúdo gerado com sucesso!"}
	}
}

func (s *DefaultGeneratorService) generateIdeas(prompt string) []Idea {
	archetypes := s.catalog.IdeaArchetypes()
	ideas := make([]Idea, 0, len(archetypes))
	for _, a := range archetypes {
		ideas = append(ideas, Idea{
			Title:       fmt.Sprintf(a.TitlePattern, prompt),
			Description: fmt.Sprintf(a.DescriptionPattern, prompt),
			Format:      a.Format,
		})
	}
	return ideas
}

// generateHashtags treats the prompt as a comma-separated keyword list. The
// first three fragments each yield a bare, "2024" and "Brasil" variant; the
// platform and general tag sets follow. The result is a deduplicated set of
// at most 20 tags; callers must not rely on its order.
func (s *DefaultGeneratorService) generateHashtags(prompt, platform string) []string {
	var tags []string

	normalized := strings.ReplaceAll(strings.ToLower(prompt), " ", "")
	fragments := strings.Split(normalized, ",")
	count := 0
	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		if count == 3 {
			break
		}
		tags = append(tags, frag, frag+"2024", frag+"Brasil")
		count++
	}

	tags = append(tags, s.catalog.PlatformHashtags(platform)...)
	tags = append(tags, s.catalog.GeneralHashtags()...)

	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, maxHashtags)
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
		if len(result) == maxHashtags {
			break
		}
	}
	return result
}

func (s *DefaultGeneratorService) generateScript(prompt string) *Script {
	skeleton := s.catalog.Script()
	return &Script{
		Hook:              fmt.Sprintf(skeleton.HookPattern, prompt),
		Development:       fmt.Sprintf(skeleton.DevelopmentPattern, prompt, prompt),
		CTA:               skeleton.CTA,
		VisualSuggestions: skeleton.VisualSuggestions,
	}
}
