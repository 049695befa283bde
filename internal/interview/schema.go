package interview

import "github.com/nandita/prepwise/internal/llm"

// QuestionListSchema defines the JSON schema for question generation responses.
var QuestionListSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "A list of interview questions tailored to a role and experience level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question as it will be read to the candidate",
						},
						"question_type": map[string]any{
							"type":        "string",
							"enum":        []any{"technical", "behavioral"},
							"description": "Whether this probes technical skill or behavioral competency",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty calibrated to the candidate's experience level",
						},
						"expected_answer": map[string]any{
							"type":        "string",
							"description": "Key points a strong answer would cover, used for grading only",
						},
					},
					"required":             []any{"question_text", "question_type", "difficulty", "expected_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON schema for answer grading responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A graded assessment of one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall answer quality from 0 (no answer) to 100 (excellent)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-3 sentences of specific, constructive feedback",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the answer did well",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete ways to improve the answer",
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements"},
		"additionalProperties": false,
	},
}

// ReviewSchema defines the JSON schema for whole-session review responses.
var ReviewSchema = &llm.Schema{
	Name:        "session-review",
	Description: "A holistic performance review of a completed practice session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Holistic session score from 0 to 100",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Patterns of strength across the session",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Recurring gaps or weak areas",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Prioritized study or practice recommendations",
			},
			"analysis": map[string]any{
				"type":        "string",
				"description": "A paragraph of narrative analysis of the candidate's performance",
			},
		},
		"required":             []any{"overall_score", "strengths", "weaknesses", "recommendations", "analysis"},
		"additionalProperties": false,
	},
}
