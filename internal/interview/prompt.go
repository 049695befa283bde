package interview

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const generatorSystemPrompt = `You are an experienced interviewer preparing questions for a mock job interview.

Rules:
- Generate exactly the requested number of questions, no more and no fewer.
- Tailor every question to the target role, the job description, and the candidate's experience level.
- For "technical" interviews generate only technical questions. For "behavioral" and "hr" generate only behavioral questions. For "group-discussion" generate open-ended behavioral discussion topics a candidate would be asked to lead.
- Calibrate difficulty to experience: mostly easy/medium for entry-level candidates, medium/hard for senior.
- Each question must be self-contained and answerable verbally in 2-5 minutes without a whiteboard.
- For each question write an expected answer: the key points a strong response would cover. It is used for grading and never shown to the candidate.
- Do not number the questions inside their text.`

const evaluatorSystemPrompt = `You are an experienced interviewer grading one answer from a mock interview.

Rules:
- Score from 0 to 100. 0 means no meaningful attempt, 50 means partially correct with significant gaps, 80 means solid with minor omissions, 95+ means an answer a strong hire would give.
- Grade against the expected answer, but give credit for correct alternative approaches the expected answer does not mention.
- Feedback must be specific to what the candidate actually said. Quote or paraphrase their words.
- List concrete strengths and concrete improvements, not generic advice.
- Never penalize informal spoken language, filler words, or transcription artifacts.`

const reviewerSystemPrompt = `You are an experienced interview coach writing a final performance review for a completed mock interview session.

Rules:
- Base the review only on the questions, answers, scores, and feedback provided.
- Identify patterns across answers rather than repeating per-question feedback.
- Skipped questions count against coverage; mention them if there were any.
- Recommendations must be actionable and ordered by impact.
- Write the analysis as one cohesive paragraph addressed to the candidate.`

// buildGeneratorMessage constructs the user message for question generation.
func buildGeneratorMessage(setup SessionSetup) string {
	count := setup.QuestionCount
	if count <= 0 {
		count = DefaultQuestionCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Interview type: %s\n", setup.InterviewType)
	fmt.Fprintf(&b, "Target role: %s\n", setup.TargetRole)
	fmt.Fprintf(&b, "Experience level: %s\n", setup.ExperienceLevel)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)
	b.WriteString("\nJob description:\n")
	b.WriteString(strings.TrimSpace(setup.JobDescription))
	return b.String()
}

// buildEvaluatorMessage constructs the user message for grading one answer.
func buildEvaluatorMessage(input EvaluationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target role: %s\n", input.TargetRole)
	fmt.Fprintf(&b, "Question type: %s\n", input.QuestionType)
	fmt.Fprintf(&b, "\nQuestion:\n%s\n", input.Question)
	fmt.Fprintf(&b, "\nExpected answer (grading key):\n%s\n", input.ExpectedAnswer)
	fmt.Fprintf(&b, "\nCandidate's answer:\n%s", input.UserAnswer)
	return b.String()
}

var reviewerUserTemplate = template.Must(template.New("review").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`Interview type: {{.Setup.InterviewType}}
Target role: {{.Setup.TargetRole}}
Experience level: {{.Setup.ExperienceLevel}}
Aggregate score: {{.OverallScore}}/100

Per-question results:
{{range $i, $q := .Questions}}{{inc $i}}. Question: {{$q.Question}}
{{if $q.Skipped}}   (skipped)
{{else}}   Answer: {{$q.UserAnswer}}
   Score: {{$q.Score}}/100
   Feedback: {{$q.Feedback}}
{{end}}{{end}}`))

// buildReviewerMessage constructs the user message for the session review.
func buildReviewerMessage(input ReviewInput) (string, error) {
	var buf bytes.Buffer
	if err := reviewerUserTemplate.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
