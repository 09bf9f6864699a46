// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akito/kotoba/ent/lessonpackage"
	"github.com/akito/kotoba/ent/llmrequestevent"
	"github.com/akito/kotoba/ent/practicesession"
	"github.com/akito/kotoba/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonpackageFields := schema.LessonPackage{}.Fields()
	_ = lessonpackageFields
	// lessonpackageDescTitle is the schema descriptor for title field.
	lessonpackageDescTitle := lessonpackageFields[3].Descriptor()
	// lessonpackage.DefaultTitle holds the default value on creation for the title field.
	lessonpackage.DefaultTitle = lessonpackageDescTitle.Default.(string)
	// lessonpackageDescModel is the schema descriptor for model field.
	lessonpackageDescModel := lessonpackageFields[4].Descriptor()
	// lessonpackage.DefaultModel holds the default value on creation for the model field.
	lessonpackage.DefaultModel = lessonpackageDescModel.Default.(string)
	// lessonpackageDescCreatedAt is the schema descriptor for created_at field.
	lessonpackageDescCreatedAt := lessonpackageFields[7].Descriptor()
	// lessonpackage.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonpackage.DefaultCreatedAt = lessonpackageDescCreatedAt.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescStageIdx is the schema descriptor for stage_idx field.
	practicesessionDescStageIdx := practicesessionFields[1].Descriptor()
	// practicesession.DefaultStageIdx holds the default value on creation for the stage_idx field.
	practicesession.DefaultStageIdx = practicesessionDescStageIdx.Default.(int)
	// practicesessionDescCompleted is the schema descriptor for completed field.
	practicesessionDescCompleted := practicesessionFields[2].Descriptor()
	// practicesession.DefaultCompleted holds the default value on creation for the completed field.
	practicesession.DefaultCompleted = practicesessionDescCompleted.Default.(bool)
	// practicesessionDescStartedAt is the schema descriptor for started_at field.
	practicesessionDescStartedAt := practicesessionFields[4].Descriptor()
	// practicesession.DefaultStartedAt holds the default value on creation for the started_at field.
	practicesession.DefaultStartedAt = practicesessionDescStartedAt.Default.(func() time.Time)
	// practicesessionDescUpdatedAt is the schema descriptor for updated_at field.
	practicesessionDescUpdatedAt := practicesessionFields[5].Descriptor()
	// practicesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practicesession.DefaultUpdatedAt = practicesessionDescUpdatedAt.Default.(func() time.Time)
	// practicesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practicesession.UpdateDefaultUpdatedAt = practicesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
