package services

import (
	"encoding/json"
	"errors"
)

// ContentType enumerates the supported generation kinds. Handlers parse the
// raw route value through ParseContentType so the generator only ever sees a
// valid member.
type ContentType string

const (
	ContentTypeCaption  ContentType = "caption"
	ContentTypeIdeas    ContentType = "ideas"
	ContentTypeHashtags ContentType = "hashtags"
	ContentTypeScript   ContentType = "script"
)

var (
	ErrInvalidContentType = errors.New("tipo de conteúdo inválido")
	ErrQuotaExceeded      = errors.New("limite mensal atingido")
	ErrUserNotFound       = errors.New("usuário não encontrado")
)

// ParseContentType validates a raw content type value.
func ParseContentType(raw string) (ContentType, error) {
	switch ct := ContentType(raw); ct {
	case ContentTypeCaption, ContentTypeIdeas, ContentTypeHashtags, ContentTypeScript:
		return ct, nil
	default:
		return "", ErrInvalidContentType
	}
}

// GenerationRequest carries one generation call. Platform and Tone hold the
// raw client values; defaults apply at render time.
type GenerationRequest struct {
	Type     ContentType
	Prompt   string
	Platform string
	Tone     string
}

// Idea is one content-idea suggestion.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Format      string `json:"format"`
}

// Script is the four-part short-video structure.
type Script struct {
	Hook              string   `json:"hook"`
	Development       string   `json:"development"`
	CTA               string   `json:"cta"`
	VisualSuggestions []string `json:"visual_suggestions"`
}

// Artifact is the tagged union of generator outputs. Exactly one variant is
// populated, selected by Type.
type Artifact struct {
	Type     ContentType
	Text     string
	Ideas    []Idea
	Hashtags []string
	Script   *Script
}

// Payload returns the variant value placed under the content-type key in the
// success envelope.
func (a Artifact) Payload() interface{} {
	switch a.Type {
	case ContentTypeIdeas:
		return a.Ideas
	case ContentTypeHashtags:
		return a.Hashtags
	case ContentTypeScript:
		return a.Script
	default:
		return a.Text
	}
}

// Encode returns the canonical storage form: plain text as-is, structured
// variants JSON-encoded.
func (a Artifact) Encode() (string, error) {
	switch a.Type {
	case ContentTypeIdeas, ContentTypeHashtags, ContentTypeScript:
		b, err := json.Marshal(a.Payload())
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return a.Text, nil
	}
}
