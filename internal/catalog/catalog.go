// Package catalog holds the fixed template data the generator renders from.
// Everything here is immutable after construction and safe to share across
// concurrent requests.
package catalog

import "fmt"

// IdeaArchetype is one of the fixed content-idea shapes. Title and
// Description are fmt patterns with a single %s for the prompt; Format is a
// constant label.
type IdeaArchetype struct {
	TitlePattern       string
	DescriptionPattern string
	Format             string
}

// ScriptSkeleton is the fixed four-part video script structure. Hook and
// Development are fmt patterns interpolating the prompt.
type ScriptSkeleton struct {
	HookPattern        string
	DevelopmentPattern string
	CTA                string
	VisualSuggestions  []string
}

type Catalog struct {
	captionTemplates map[string]string
	ideaArchetypes   []IdeaArchetype
	platformHashtags map[string][]string
	generalHashtags  []string
	script           ScriptSkeleton
}

const (
	ToneCasual       = "casual"
	ToneProfessional = "professional"
	ToneFunny        = "funny"

	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformLinkedIn  = "linkedin"
)

func New() *Catalog {
	return &Catalog{
		captionTemplates: map[string]string{
			ToneCasual:       "🚀 %s ✨\n\nVocê sabia que isso pode transformar completamente sua rotina? Aqui estão algumas dicas incríveis:\n\n📝 Primeira dica importante\n💡 Segunda dica valiosa\n🎯 Terceira dica essencial\n\nO que você achou? Comenta aqui embaixo! 👇\n\n#ContentFlow #DicasIncriveis #Transformacao",
			ToneProfessional: "📊 %s\n\nEm um mercado cada vez mais competitivo, é fundamental estar atualizado com as melhores práticas. Nosso estudo mostra que:\n\n• 85%% dos profissionais que aplicam essas técnicas veem resultados\n• Aumento médio de 40%% na produtividade\n• ROI positivo em até 30 dias\n\nSaiba mais nos comentários.\n\n#Profissional #Resultados #Estrategia",
			ToneFunny:        "😂 %s 🤣\n\nGente, vocês não vão acreditar no que aconteceu! Era uma vez...\n\n🎭 Plot twist número 1\n🎪 Momento épico\n🎨 Final inesperado\n\nQuem mais já passou por isso? Marca aquele amigo que precisa ver! 😅\n\n#Humor #Engracado #VidaReal",
		},
		ideaArchetypes: []IdeaArchetype{
			{
				TitlePattern:       "Tutorial sobre %s",
				DescriptionPattern: "Crie um passo a passo completo sobre %s para iniciantes",
				Format:             "Vídeo tutorial",
			},
			{
				TitlePattern:       "Mitos e verdades sobre %s",
				DescriptionPattern: "Desmistifique conceitos errados relacionados a %s",
				Format:             "Carrossel informativo",
			},
			{
				TitlePattern:       "Antes e depois: %s",
				DescriptionPattern: "Mostre transformações reais relacionadas a %s",
				Format:             "Post comparativo",
			},
			{
				TitlePattern:       "5 erros comuns em %s",
				DescriptionPattern: "Liste os principais erros que pessoas cometem com %s",
				Format:             "Lista educativa",
			},
			{
				TitlePattern:       "Tendências 2024 em %s",
				DescriptionPattern: "Apresente as principais tendências e novidades em %s",
				Format:             "Post informativo",
			},
		},
		platformHashtags: map[string][]string{
			PlatformInstagram: {"insta", "instagram", "reels", "stories", "igers"},
			PlatformTikTok:    {"tiktok", "fyp", "viral", "trending", "foryou"},
			PlatformYouTube:   {"youtube", "shorts", "subscribe", "youtuber", "video"},
			PlatformLinkedIn:  {"linkedin", "professional", "career", "business", "networking"},
		},
		generalHashtags: []string{
			"brasil", "dicas", "motivacao", "inspiracao", "sucesso",
			"lifestyle", "qualidade", "inovacao", "criatividade", "foco",
		},
		script: ScriptSkeleton{
			HookPattern:        "Você sabia que %s pode mudar sua vida em 30 dias?",
			DevelopmentPattern: "Hoje vou te mostrar exatamente como %s funciona na prática. Primeiro, você precisa entender que... [desenvolvimento do conteúdo sobre %s]",
			CTA:                "Se esse conteúdo te ajudou, salva o post e compartilha com quem precisa ver!",
			VisualSuggestions: []string{
				"Texto na tela com estatísticas",
				"Transições dinâmicas",
				"Close-up para momentos importantes",
				"Música de fundo energética",
			},
		},
	}
}

// CaptionTemplate returns the caption pattern for tone, falling back to the
// casual template for unknown tones.
func (c *Catalog) CaptionTemplate(tone string) string {
	if tpl, ok := c.captionTemplates[tone]; ok {
		return tpl
	}
	return c.captionTemplates[ToneCasual]
}

// RenderCaption interpolates the prompt into the tone's template.
func (c *Catalog) RenderCaption(tone, prompt string) string {
	return fmt.Sprintf(c.CaptionTemplate(tone), prompt)
}

// IdeaArchetypes returns the fixed ordered archetype list.
func (c *Catalog) IdeaArchetypes() []IdeaArchetype {
	return c.ideaArchetypes
}

// PlatformHashtags returns the five tags for platform, falling back to the
// instagram set for unknown platforms.
func (c *Catalog) PlatformHashtags(platform string) []string {
	if tags, ok := c.platformHashtags[platform]; ok {
		return tags
	}
	return c.platformHashtags[PlatformInstagram]
}

// GeneralHashtags returns the ten platform-independent tags.
func (c *Catalog) GeneralHashtags() []string {
	return c.generalHashtags
}

// Script returns the fixed video script skeleton.
func (c *Catalog) Script() ScriptSkeleton {
	return c.script
}
