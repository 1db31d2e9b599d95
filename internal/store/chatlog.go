package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ChatRequestData captures a single chat/LLM call for the request log.
type ChatRequestData struct {
	SessionID    string
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

// ChatRequest is a logged chat call as read back from the store.
type ChatRequest struct {
	ID        int
	Timestamp time.Time
	ChatRequestData
}

// ChatUsage aggregates token usage per purpose label.
type ChatUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ChatModelUsage aggregates token usage per model.
type ChatModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ChatLog is an append-only log of chat requests.
type ChatLog struct {
	db *sql.DB
}

// Append records a chat request. Logging is best-effort from the caller's
// perspective; errors are returned for visibility but should not fail the
// chat call itself.
func (l *ChatLog) Append(ctx context.Context, data ChatRequestData) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO chat_requests (
			timestamp, session_id, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success,
			error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.SessionID, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, boolToInt(data.Success),
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append chat request: %w", err)
	}
	return nil
}

// List returns the most recent chat requests, newest first.
// limit <= 0 means no limit.
func (l *ChatLog) List(ctx context.Context, limit int) ([]ChatRequest, error) {
	q := "SELECT id, timestamp, session_id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body FROM chat_requests ORDER BY id DESC"
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query chat requests: %w", err)
	}
	defer rows.Close()

	var out []ChatRequest
	for rows.Next() {
		r, err := scanChatRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Get returns a single chat request by ID, or nil if not found.
func (l *ChatLog) Get(ctx context.Context, id int) (*ChatRequest, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT id, timestamp, session_id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body FROM chat_requests WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("query chat request: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	r, err := scanChatRequest(rows)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UsageByPurpose aggregates calls and token usage grouped by purpose.
func (l *ChatLog) UsageByPurpose(ctx context.Context) ([]ChatUsage, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens), CAST(AVG(latency_ms) AS INTEGER)
		FROM chat_requests GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query chat usage: %w", err)
	}
	defer rows.Close()

	var out []ChatUsage
	for rows.Next() {
		var u ChatUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan chat usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UsageByModel aggregates calls and token usage grouped by model.
func (l *ChatLog) UsageByModel(ctx context.Context) ([]ChatModelUsage, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM chat_requests GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query model usage: %w", err)
	}
	defer rows.Close()

	var out []ChatModelUsage
	for rows.Next() {
		var u ChatModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanChatRequest(rows *sql.Rows) (ChatRequest, error) {
	var r ChatRequest
	var ts string
	var success int
	err := rows.Scan(&r.ID, &ts, &r.SessionID, &r.Provider, &r.Model, &r.Purpose,
		&r.InputTokens, &r.OutputTokens, &r.LatencyMs, &success,
		&r.ErrorMessage, &r.RequestBody, &r.ResponseBody)
	if err != nil {
		return r, fmt.Errorf("scan chat request: %w", err)
	}
	r.Success = success != 0
	r.Timestamp, _ = time.Parse(time.RFC3339, ts)
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
