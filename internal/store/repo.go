package store

import (
	"context"
	"time"
)

// LLMRequestEventData records a single round trip to an LLM provider.
type LLMRequestEventData struct {
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// SessionEventData records a session lifecycle action ("started",
// "completed", "abandoned").
type SessionEventData struct {
	SessionID         string
	Action            string
	TestName          string
	QuestionCount     int
	CorrectAnswers    int
	DurationSecs      int
	InitialDifficulty string
	FinalDifficulty   string
}

// AnswerEventData records one answered (or timed-out) question.
type AnswerEventData struct {
	SessionID    string
	QuestionText string
	Concept      string
	Difficulty   string
	Style        string
	UserAnswer   string
	Correct      bool
	TimedOut     bool
	TimeMs       int64
}

// QueryOpts filters and limits event queries.
type QueryOpts struct {
	Limit   int
	Purpose string
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// SessionStats aggregates historical performance across all sessions.
type SessionStats struct {
	SessionsCompleted int
	QuestionsAnswered int
	CorrectAnswers    int
	TimedOut          int
	DistinctConcepts  int
	ByDifficulty      []DifficultyStat
}

// DifficultyStat counts answers at one difficulty level.
type DifficultyStat struct {
	Difficulty string
	Answered   int
	Correct    int
}

// EventRepo is the append-only event log. Writes never fail the caller's
// main flow; callers decide whether to surface append errors.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	SessionStats(ctx context.Context) (*SessionStats, error)
}
