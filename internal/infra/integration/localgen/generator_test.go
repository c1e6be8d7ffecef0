package localgen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/integration/localgen"
)

func TestGenerateInitialIsDeterministic(t *testing.T) {
	ctx := context.Background()
	gen := localgen.NewGenerator()
	lead := entity.NewLead("Acme", "Jane", "jane@acme.com", "acme.com", "plumbing")

	first, err := gen.GenerateInitial(ctx, lead)
	assert.NoError(t, err)

	second, err := gen.GenerateInitial(ctx, lead)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Quick question for Acme", first.Subject)
	assert.Contains(t, first.Body, "Jane")
	assert.Contains(t, first.Body, "plumbing")
}

func TestGenerateFollowUpSubject(t *testing.T) {
	ctx := context.Background()
	gen := localgen.NewGenerator()
	lead := entity.NewLead("Acme", "Jane", "jane@acme.com", "", "")

	draft, err := gen.GenerateFollowUp(ctx, lead, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Re: Quick question for Acme", draft.Subject)
	assert.Contains(t, draft.Body, "Acme")
}

func TestClassifySentimentHeuristics(t *testing.T) {
	ctx := context.Background()
	gen := localgen.NewGenerator()

	cases := []struct {
		text string
		want string
	}{
		{"Sounds good, tell me more", entity.SentimentPositive},
		{"Please unsubscribe me from this list", entity.SentimentNegative},
		{"Who is this?", entity.SentimentNeutral},
		// Negativo ganha do positivo: "not interested" contém "interested"
		{"I'm not interested, thanks", entity.SentimentNegative},
	}

	for _, tc := range cases {
		got, err := gen.ClassifySentiment(ctx, tc.text)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.text)
	}
}
