package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nandita/prepwise/internal/llm"
)

// Generator produces the question set for a new session using the LLM.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// questionListOutput is the raw LLM response before validation.
type questionListOutput struct {
	Questions []struct {
		QuestionText   string `json:"question_text"`
		QuestionType   string `json:"question_type"`
		Difficulty     string `json:"difficulty"`
		ExpectedAnswer string `json:"expected_answer"`
	} `json:"questions"`
}

// Generate produces the full question set for a session. On any failure
// it returns a *GenerationError and no questions.
func (g *Generator) Generate(ctx context.Context, setup SessionSetup) ([]GeneratedQuestion, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratorMessage(setup)},
		},
		Schema:      QuestionListSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var raw questionListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("parse response: %w", err)}
	}

	// Providers occasionally return fewer questions than asked; a short
	// set still makes a usable session, an empty one does not.
	if len(raw.Questions) == 0 {
		return nil, &GenerationError{Err: fmt.Errorf("provider returned no questions")}
	}

	questions := make([]GeneratedQuestion, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return nil, &GenerationError{Err: fmt.Errorf("question %d has empty text", i+1)}
		}
		if strings.TrimSpace(q.ExpectedAnswer) == "" {
			return nil, &GenerationError{Err: fmt.Errorf("question %d has no expected answer", i+1)}
		}
		if q.QuestionType == "" || q.Difficulty == "" {
			return nil, &GenerationError{Err: fmt.Errorf("question %d is missing type or difficulty", i+1)}
		}
		questions = append(questions, GeneratedQuestion{
			Text:           q.QuestionText,
			Type:           q.QuestionType,
			Difficulty:     q.Difficulty,
			ExpectedAnswer: q.ExpectedAnswer,
		})
	}
	return questions, nil
}
