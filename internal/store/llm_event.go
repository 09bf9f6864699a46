package store

import (
	"context"
	"fmt"
	"time"

	"github.com/akito/kotoba/ent"
	"github.com/akito/kotoba/ent/llmrequestevent"
	"github.com/akito/kotoba/internal/llm"
)

// EventRepo appends and queries LLM request events. It satisfies
// llm.EventRepo.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AppendLLMRequest records one provider call with the next global
// sequence number.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, data llm.LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Purpose string // exact purpose match when non-empty
	Failed  bool   // only failed requests
}

// LLMEvent is one recorded provider call.
type LLMEvent struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ListLLMRequests returns events matching opts, newest first.
func (r *EventRepo) ListLLMRequests(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.Failed {
		q = q.Where(llmrequestevent.Success(false))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	events := make([]*LLMEvent, len(rows))
	for i, row := range rows {
		events[i] = eventFromRow(row)
	}
	return events, nil
}

// GetLLMRequest returns the event with the given sequence number, or
// nil if it doesn't exist.
func (r *EventRepo) GetLLMRequest(ctx context.Context, sequence int64) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query LLM request event: %w", err)
	}
	return eventFromRow(row), nil
}

// LLMStats aggregates recorded usage.
type LLMStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	ByPurpose    map[string]int
}

// LLMRequestStats aggregates all recorded events. Cost uses the
// pricing table; models with unknown pricing contribute zero.
func (r *EventRepo) LLMRequestStats(ctx context.Context) (*LLMStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	stats := &LLMStats{ByPurpose: make(map[string]int)}
	for _, row := range rows {
		stats.Requests++
		if !row.Success {
			stats.Failures++
		}
		stats.InputTokens += row.InputTokens
		stats.OutputTokens += row.OutputTokens
		stats.ByPurpose[row.Purpose]++
		if cost := llm.LookupCost(row.Model); cost != nil {
			stats.CostUSD += cost.Cost(row.InputTokens, row.OutputTokens)
		}
	}
	return stats, nil
}

func eventFromRow(row *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
