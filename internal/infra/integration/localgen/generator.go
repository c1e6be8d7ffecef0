package localgen

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/usecase"
)

// Generator é o backend de rascunho sem IA, usado quando não há
// OPENAI_API_KEY configurada. Determinístico, o que também ajuda nos
// ambientes de teste e homologação.
type Generator struct {
	initialTmpl  *template.Template
	followUpTmpl *template.Template
}

const initialBody = `<p>Hi {{.DecisionMakerName}},</p>
<p>I came across {{.BusinessName}}{{if .Industry}} while looking at {{.Industry}} businesses{{end}} and noticed a few quick wins that could bring you more clients online.</p>
<p>I'd love to put together a free website audit for you, no strings attached.</p>
<p>Open to a 15-min call this week?</p>`

const followUpBody = `<p>Hi {{.DecisionMakerName}},</p>
<p>Just floating this back to the top of your inbox. The free audit offer for {{.BusinessName}} still stands.</p>
<p>Would a quick 15-min call make sense?</p>`

func NewGenerator() *Generator {
	return &Generator{
		initialTmpl:  template.Must(template.New("initial").Parse(initialBody)),
		followUpTmpl: template.Must(template.New("follow-up").Parse(followUpBody)),
	}
}

func (g *Generator) GenerateInitial(_ context.Context, lead *entity.Lead) (*usecase.Draft, error) {
	var body bytes.Buffer
	if err := g.initialTmpl.Execute(&body, lead); err != nil {
		return nil, fmt.Errorf("erro no template inicial: %w", err)
	}

	return &usecase.Draft{
		Subject: fmt.Sprintf("Quick question for %s", lead.BusinessName),
		Body:    body.String(),
	}, nil
}

func (g *Generator) GenerateFollowUp(_ context.Context, lead *entity.Lead, _ []*entity.Email) (*usecase.Draft, error) {
	var body bytes.Buffer
	if err := g.followUpTmpl.Execute(&body, lead); err != nil {
		return nil, fmt.Errorf("erro no template de follow-up: %w", err)
	}

	return &usecase.Draft{
		Subject: fmt.Sprintf("Re: Quick question for %s", lead.BusinessName),
		Body:    body.String(),
	}, nil
}

var negativeMarkers = []string{"not interested", "no thanks", "unsubscribe", "stop emailing", "remove me", "don't contact"}
var positiveMarkers = []string{"interested", "sounds good", "tell me more", "let's talk", "book a call", "more info", "yes"}

// ClassifySentiment é heurística por palavras-chave. Negativo ganha do
// positivo de propósito: "not interested" contém "interested".
func (g *Generator) ClassifySentiment(_ context.Context, text string) (string, error) {
	lower := strings.ToLower(text)

	for _, marker := range negativeMarkers {
		if strings.Contains(lower, marker) {
			return entity.SentimentNegative, nil
		}
	}
	for _, marker := range positiveMarkers {
		if strings.Contains(lower, marker) {
			return entity.SentimentPositive, nil
		}
	}

	return entity.SentimentNeutral, nil
}
