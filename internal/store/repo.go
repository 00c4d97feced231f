package store

import (
	"context"
	"time"

	"github.com/abhisek/questforge/internal/quest"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version    int           `json:"version"`
	Profile    quest.Profile `json:"profile"`
	Difficulty float64       `json:"difficulty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
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

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
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

// LLMUsageStats aggregates LLM usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMModelUsage aggregates LLM usage for one provider/model pair.
type LLMModelUsage struct {
	Provider     string
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// PlanEventData captures a finalized daily plan for appending.
// Quests and Rationale accept any JSON-serializable value; they are
// stored as JSON and returned as generic maps on query.
type PlanEventData struct {
	PlanID       string
	PlanDate     string
	DayType      string
	TotalMinutes int
	QuestCount   int
	Quests       any
	Rationale    any
	FallbackUsed bool
}

// PlanEventRecord is a stored plan event.
type PlanEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	PlanID       string
	PlanDate     string
	DayType      string
	TotalMinutes int
	QuestCount   int
	Quests       []map[string]any
	Rationale    []map[string]any
	FallbackUsed bool
}

// CompletionEventData captures the outcome of one attempted quest.
type CompletionEventData struct {
	PlanDate       string
	QuestTitle     string
	Pattern        string
	Difficulty     float64
	PlannedMinutes int
	ActualMinutes  int
	Completed      bool
	Rating         int
}

// CompletionRecord is a stored completion event.
type CompletionRecord struct {
	Sequence       int64
	Timestamp      time.Time
	PlanDate       string
	QuestTitle     string
	Pattern        string
	Difficulty     float64
	PlannedMinutes int
	ActualMinutes  int
	Completed      bool
	Rating         int
}

// AdjustmentEventData captures a difficulty adjustment decision.
type AdjustmentEventData struct {
	QuestTitle         string
	Type               string
	Magnitude          string
	PreviousDifficulty float64
	NewDifficulty      float64
	Confidence         float64
	Reasoning          string
	Rollback           bool
	ReversesSequence   int64
	CompletionMark     int
}

// AdjustmentRecord is a stored adjustment event.
type AdjustmentRecord struct {
	Sequence           int64
	Timestamp          time.Time
	QuestTitle         string
	Type               string
	Magnitude          string
	PreviousDifficulty float64
	NewDifficulty      float64
	Confidence         float64
	Reasoning          string
	Rollback           bool
	ReversesSequence   int64
	CompletionMark     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns the event with the given sequence, or nil.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per provider/model pair.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendPlan records a finalized daily plan.
	AppendPlan(ctx context.Context, data PlanEventData) error

	// QueryPlans returns plan events, newest first.
	QueryPlans(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error)

	// PlanForDate returns the most recent plan for a date, or nil.
	PlanForDate(ctx context.Context, date string) (*PlanEventRecord, error)

	// AppendCompletion records a quest outcome.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// QueryCompletions returns completion events, newest first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error)

	// CompletionsSince returns completions with sequence > after, oldest first.
	CompletionsSince(ctx context.Context, after int64) ([]CompletionRecord, error)

	// AppendAdjustment records a difficulty adjustment.
	AppendAdjustment(ctx context.Context, data AdjustmentEventData) error

	// QueryAdjustments returns adjustment events, newest first.
	QueryAdjustments(ctx context.Context, opts QueryOpts) ([]AdjustmentRecord, error)

	// LatestAdjustment returns the most recent adjustment, or nil.
	LatestAdjustment(ctx context.Context) (*AdjustmentRecord, error)
}
