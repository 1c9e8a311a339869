package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// maxCatalogContext caps how many catalog entries are described to the
// model to keep the prompt bounded.
const maxCatalogContext = 20

// Config holds configuration for the OpenAI-backed oracle
type Config struct {
	APIKey string
	Model  string
}

// DefaultConfig returns default oracle configuration
func DefaultConfig() Config {
	return Config{
		Model: string(openai.ChatModelGPT4oMini),
	}
}

// OpenAI answers questions through the chat completions API
type OpenAI struct {
	client openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

var _ Oracle = (*OpenAI)(nil)

// NewOpenAI creates an OpenAI-backed oracle
func NewOpenAI(cfg Config, logger *slog.Logger) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  openai.ChatModel(cfg.Model),
		logger: logger,
	}, nil
}

// Advise sends the question with team and catalog context. The system
// prompt forbids revealing point values, and the catalog context omits
// them entirely.
func (o *OpenAI) Advise(ctx context.Context, req Request) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(buildSystemPrompt(req)),
			openai.UserMessage(req.Query),
		},
		MaxTokens:   openai.Int(500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func buildSystemPrompt(req Request) string {
	teamContext := "No players in team yet."
	if len(req.Roster) > 0 {
		lines := make([]string, len(req.Roster))
		for i, p := range req.Roster {
			lines[i] = fmt.Sprintf("Position %d: %s (%s)", i+1, p.Name, p.Category)
		}
		teamContext = strings.Join(lines, "\n")
	}

	catalog := req.Catalog
	if len(catalog) > maxCatalogContext {
		catalog = catalog[:maxCatalogContext]
	}
	catalogLines := make([]string, len(catalog))
	for i, p := range catalog {
		catalogLines[i] = fmt.Sprintf(
			"Player %d: %s (%s, %s) - Budget: %d, Batting SR: %.2f, Bowling SR: %.2f, Batting Avg: %.2f, Economy: %.2f",
			p.ID, p.Name, p.University, p.Category,
			p.BudgetCost, p.BattingStrikeRate, p.BowlingStrikeRate, p.BattingAverage, p.Economy,
		)
	}

	return fmt.Sprintf(`You are Spiriter, a cricket fantasy league assistant. Help users build their fantasy cricket team.

Current team information:
%s

Remaining budget: %d

Important rules:
1. NEVER reveal player point values to users
2. Maximum team size is 11 players
3. Users must stay within their budget
4. Be helpful and give cricket-specific advice

Some available players (but don't limit to just these):
%s`, teamContext, req.RemainingBudget, strings.Join(catalogLines, "\n"))
}
