package commentary

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/call_play.txt
var callPlayPrompt string

var callPlayTemplate = template.Must(template.New("call_play").Parse(callPlayPrompt))

// Gemini calls plays with a Gemini model. The catalog supplies the plain facts
// the model is asked to dress up.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	facts  *Catalog
}

func NewGemini(ctx context.Context, apiKey, modelName string, facts *Catalog) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	return &Gemini{
		client: client,
		model:  model,
		facts:  facts,
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Announce(ctx context.Context, play Play) (string, error) {
	prompt, err := renderPlayPrompt(g.facts, play)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

func renderPlayPrompt(facts *Catalog, play Play) (string, error) {
	state := play.State
	data := struct {
		Locale   string
		Away     string
		Home     string
		Half     string
		Inning   int
		Outs     int
		Bases    string
		RunsAway int
		RunsHome int
		Facts    []string
	}{
		Locale:   facts.Locale(),
		Away:     play.Teams.AwayName,
		Home:     play.Teams.HomeName,
		Half:     state.Clock.Half(),
		Inning:   state.Clock.Inning,
		Outs:     state.Half.Outs,
		Bases:    state.Half.Bases.String(),
		RunsAway: state.Score.RunsAway,
		RunsHome: state.Score.RunsHome,
		Facts:    facts.Lines(play),
	}

	var buf bytes.Buffer
	if err := callPlayTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fallback asks Primary first and Secondary when Primary fails.
type Fallback struct {
	Primary   Announcer
	Secondary Announcer
}

func (f Fallback) Announce(ctx context.Context, play Play) (string, error) {
	text, err := f.Primary.Announce(ctx, play)
	if err == nil && text != "" {
		return text, nil
	}
	if err != nil {
		log.Printf("commentary: primary announcer failed, falling back: %v", err)
	}
	return f.Secondary.Announce(ctx, play)
}
