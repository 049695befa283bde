// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/nandita/prepwise/ent/answer"
	"github.com/nandita/prepwise/ent/llmcall"
	"github.com/nandita/prepwise/ent/question"
	"github.com/nandita/prepwise/ent/review"
	"github.com/nandita/prepwise/ent/schema"
	"github.com/nandita/prepwise/ent/session"
	"github.com/nandita/prepwise/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescUserAnswer is the schema descriptor for user_answer field.
	answerDescUserAnswer := answerFields[3].Descriptor()
	// answer.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	answer.UserAnswerValidator = answerDescUserAnswer.Validators[0].(func(string) error)
	// answerDescFeedback is the schema descriptor for feedback field.
	answerDescFeedback := answerFields[5].Descriptor()
	// answer.DefaultFeedback holds the default value on creation for the feedback field.
	answer.DefaultFeedback = answerDescFeedback.Default.(string)
	// answerDescAnswerMethod is the schema descriptor for answer_method field.
	answerDescAnswerMethod := answerFields[8].Descriptor()
	// answer.DefaultAnswerMethod holds the default value on creation for the answer_method field.
	answer.DefaultAnswerMethod = answerDescAnswerMethod.Default.(string)
	// answerDescTimeTakenSeconds is the schema descriptor for time_taken_seconds field.
	answerDescTimeTakenSeconds := answerFields[9].Descriptor()
	// answer.DefaultTimeTakenSeconds holds the default value on creation for the time_taken_seconds field.
	answer.DefaultTimeTakenSeconds = answerDescTimeTakenSeconds.Default.(int)
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[10].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerFields[0].Descriptor()
	// answer.DefaultID holds the default value on creation for the id field.
	answer.DefaultID = answerDescID.Default.(func() uuid.UUID)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescProvider is the schema descriptor for provider field.
	llmcallDescProvider := llmcallFields[0].Descriptor()
	// llmcall.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmcall.ProviderValidator = llmcallDescProvider.Validators[0].(func(string) error)
	// llmcallDescModel is the schema descriptor for model field.
	llmcallDescModel := llmcallFields[1].Descriptor()
	// llmcall.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmcall.ModelValidator = llmcallDescModel.Validators[0].(func(string) error)
	// llmcallDescPurpose is the schema descriptor for purpose field.
	llmcallDescPurpose := llmcallFields[2].Descriptor()
	// llmcall.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmcall.PurposeValidator = llmcallDescPurpose.Validators[0].(func(string) error)
	// llmcallDescInputTokens is the schema descriptor for input_tokens field.
	llmcallDescInputTokens := llmcallFields[3].Descriptor()
	// llmcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcall.DefaultInputTokens = llmcallDescInputTokens.Default.(int)
	// llmcallDescOutputTokens is the schema descriptor for output_tokens field.
	llmcallDescOutputTokens := llmcallFields[4].Descriptor()
	// llmcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcall.DefaultOutputTokens = llmcallDescOutputTokens.Default.(int)
	// llmcallDescLatencyMs is the schema descriptor for latency_ms field.
	llmcallDescLatencyMs := llmcallFields[5].Descriptor()
	// llmcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcall.DefaultLatencyMs = llmcallDescLatencyMs.Default.(int64)
	// llmcallDescErrorMessage is the schema descriptor for error_message field.
	llmcallDescErrorMessage := llmcallFields[7].Descriptor()
	// llmcall.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmcall.DefaultErrorMessage = llmcallDescErrorMessage.Default.(string)
	// llmcallDescRequestBody is the schema descriptor for request_body field.
	llmcallDescRequestBody := llmcallFields[8].Descriptor()
	// llmcall.DefaultRequestBody holds the default value on creation for the request_body field.
	llmcall.DefaultRequestBody = llmcallDescRequestBody.Default.(string)
	// llmcallDescResponseBody is the schema descriptor for response_body field.
	llmcallDescResponseBody := llmcallFields[9].Descriptor()
	// llmcall.DefaultResponseBody holds the default value on creation for the response_body field.
	llmcall.DefaultResponseBody = llmcallDescResponseBody.Default.(string)
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[10].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[2].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[3].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescExpectedAnswer is the schema descriptor for expected_answer field.
	questionDescExpectedAnswer := questionFields[5].Descriptor()
	// question.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	question.ExpectedAnswerValidator = questionDescExpectedAnswer.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescAnalysis is the schema descriptor for analysis field.
	reviewDescAnalysis := reviewFields[6].Descriptor()
	// review.DefaultAnalysis holds the default value on creation for the analysis field.
	review.DefaultAnalysis = reviewDescAnalysis.Default.(string)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[7].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewFields[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescInterviewType is the schema descriptor for interview_type field.
	sessionDescInterviewType := sessionFields[2].Descriptor()
	// session.InterviewTypeValidator is a validator for the "interview_type" field. It is called by the builders before save.
	session.InterviewTypeValidator = sessionDescInterviewType.Validators[0].(func(string) error)
	// sessionDescJobDescription is the schema descriptor for job_description field.
	sessionDescJobDescription := sessionFields[3].Descriptor()
	// session.DefaultJobDescription holds the default value on creation for the job_description field.
	session.DefaultJobDescription = sessionDescJobDescription.Default.(string)
	// sessionDescExperienceLevel is the schema descriptor for experience_level field.
	sessionDescExperienceLevel := sessionFields[4].Descriptor()
	// session.ExperienceLevelValidator is a validator for the "experience_level" field. It is called by the builders before save.
	session.ExperienceLevelValidator = sessionDescExperienceLevel.Validators[0].(func(string) error)
	// sessionDescTargetRole is the schema descriptor for target_role field.
	sessionDescTargetRole := sessionFields[5].Descriptor()
	// session.TargetRoleValidator is a validator for the "target_role" field. It is called by the builders before save.
	session.TargetRoleValidator = sessionDescTargetRole.Validators[0].(func(string) error)
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[6].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// sessionDescTotalQuestions is the schema descriptor for total_questions field.
	sessionDescTotalQuestions := sessionFields[8].Descriptor()
	// session.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	session.DefaultTotalQuestions = sessionDescTotalQuestions.Default.(int)
	// sessionDescDurationSeconds is the schema descriptor for duration_seconds field.
	sessionDescDurationSeconds := sessionFields[9].Descriptor()
	// session.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	session.DefaultDurationSeconds = sessionDescDurationSeconds.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[10].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[11].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
