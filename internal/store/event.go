package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// eventRepo implements EventRepo with the ent SQL builder and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// insert assigns the next sequence number and writes one row.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals []any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(table).
		Columns(append([]string{"seq", "recorded_at"}, cols...)...).
		Values(append([]any{seqNum, time.Now().UTC()}, vals...)...).
		Query()

	return r.drv.Exec(ctx, query, args, nil)
}

// selectEvents builds an ordered query over table honouring opts.
func selectEvents(table string, opts QueryOpts, cols ...string) (string, []any) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(cols...).
		From(entsql.Table(table)).
		OrderBy(entsql.Asc("seq"))
	if opts.After > 0 {
		sel = sel.Where(entsql.GT("seq", opts.After))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	return sel.Query()
}

func (r *eventRepo) AppendAssessment(ctx context.Context, a catalog.Assessment) error {
	err := r.insert(ctx, tableAssessments,
		[]string{"assessment_id", "student_id", "concept_id", "score", "date", "module_id"},
		[]any{a.ID, a.StudentID, a.ConceptID, a.Score, a.Date, a.ModuleID},
	)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendEngagement(ctx context.Context, e catalog.Engagement) error {
	err := r.insert(ctx, tableEngagement,
		[]string{"student_id", "date", "minutes", "module_id"},
		[]any{e.StudentID, e.Date, e.Minutes, e.ModuleID},
	)
	if err != nil {
		return fmt.Errorf("save engagement event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	err := r.insert(ctx, tableLLMRequests,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage},
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) Assessments(ctx context.Context, opts QueryOpts) ([]catalog.Assessment, error) {
	query, args := selectEvents(tableAssessments, opts,
		"assessment_id", "student_id", "concept_id", "score", "date", "module_id")

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}
	defer rows.Close()

	var out []catalog.Assessment
	for rows.Next() {
		var a catalog.Assessment
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ConceptID, &a.Score, &a.Date, &a.ModuleID); err != nil {
			return nil, fmt.Errorf("scan assessment event: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) Engagements(ctx context.Context, opts QueryOpts) ([]catalog.Engagement, error) {
	query, args := selectEvents(tableEngagement, opts, "student_id", "date", "minutes", "module_id")

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query engagement events: %w", err)
	}
	defer rows.Close()

	var out []catalog.Engagement
	for rows.Next() {
		var e catalog.Engagement
		if err := rows.Scan(&e.StudentID, &e.Date, &e.Minutes, &e.ModuleID); err != nil {
			return nil, fmt.Errorf("scan engagement event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	query, args := selectEvents(tableLLMRequests, opts,
		"seq", "recorded_at", "provider", "model", "purpose",
		"input_tokens", "output_tokens", "latency_ms", "success", "error_message")

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var ev LLMRequestEvent
		err := rows.Scan(&ev.Seq, &ev.RecordedAt, &ev.Provider, &ev.Model, &ev.Purpose,
			&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
