// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questforge/ent/adjustmentevent"
)

// AdjustmentEvent is the model entity for the AdjustmentEvent schema.
type AdjustmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Title of the quest the adjustment applied to
	QuestTitle string `json:"quest_title,omitempty"`
	// increase, decrease, or maintain
	AdjustmentType string `json:"adjustment_type,omitempty"`
	// minor, moderate, or significant; empty for maintain
	Magnitude string `json:"magnitude,omitempty"`
	// PreviousDifficulty holds the value of the "previous_difficulty" field.
	PreviousDifficulty float64 `json:"previous_difficulty,omitempty"`
	// NewDifficulty holds the value of the "new_difficulty" field.
	NewDifficulty float64 `json:"new_difficulty,omitempty"`
	// Decision confidence, 0.0-1.0
	Confidence float64 `json:"confidence,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Whether this adjustment reverses a previous one
	Rollback bool `json:"rollback,omitempty"`
	// Sequence of the adjustment being rolled back, 0 if none
	ReversesSequence int64 `json:"reverses_sequence,omitempty"`
	// Completion count at adjustment time, for rollback gating
	CompletionMark int `json:"completion_mark,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdjustmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adjustmentevent.FieldRollback:
			values[i] = new(sql.NullBool)
		case adjustmentevent.FieldPreviousDifficulty, adjustmentevent.FieldNewDifficulty, adjustmentevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case adjustmentevent.FieldID, adjustmentevent.FieldSequence, adjustmentevent.FieldReversesSequence, adjustmentevent.FieldCompletionMark:
			values[i] = new(sql.NullInt64)
		case adjustmentevent.FieldQuestTitle, adjustmentevent.FieldAdjustmentType, adjustmentevent.FieldMagnitude, adjustmentevent.FieldReasoning:
			values[i] = new(sql.NullString)
		case adjustmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdjustmentEvent fields.
func (_m *AdjustmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adjustmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adjustmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adjustmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adjustmentevent.FieldQuestTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_title", values[i])
			} else if value.Valid {
				_m.QuestTitle = value.String
			}
		case adjustmentevent.FieldAdjustmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adjustment_type", values[i])
			} else if value.Valid {
				_m.AdjustmentType = value.String
			}
		case adjustmentevent.FieldMagnitude:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field magnitude", values[i])
			} else if value.Valid {
				_m.Magnitude = value.String
			}
		case adjustmentevent.FieldPreviousDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_difficulty", values[i])
			} else if value.Valid {
				_m.PreviousDifficulty = value.Float64
			}
		case adjustmentevent.FieldNewDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_difficulty", values[i])
			} else if value.Valid {
				_m.NewDifficulty = value.Float64
			}
		case adjustmentevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case adjustmentevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case adjustmentevent.FieldRollback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field rollback", values[i])
			} else if value.Valid {
				_m.Rollback = value.Bool
			}
		case adjustmentevent.FieldReversesSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reverses_sequence", values[i])
			} else if value.Valid {
				_m.ReversesSequence = value.Int64
			}
		case adjustmentevent.FieldCompletionMark:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_mark", values[i])
			} else if value.Valid {
				_m.CompletionMark = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdjustmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdjustmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdjustmentEvent.
// Note that you need to call AdjustmentEvent.Unwrap() before calling this method if this AdjustmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdjustmentEvent) Update() *AdjustmentEventUpdateOne {
	return NewAdjustmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdjustmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdjustmentEvent) Unwrap() *AdjustmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdjustmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdjustmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdjustmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quest_title=")
	builder.WriteString(_m.QuestTitle)
	builder.WriteString(", ")
	builder.WriteString("adjustment_type=")
	builder.WriteString(_m.AdjustmentType)
	builder.WriteString(", ")
	builder.WriteString("magnitude=")
	builder.WriteString(_m.Magnitude)
	builder.WriteString(", ")
	builder.WriteString("previous_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousDifficulty))
	builder.WriteString(", ")
	builder.WriteString("new_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewDifficulty))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("rollback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rollback))
	builder.WriteString(", ")
	builder.WriteString("reverses_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReversesSequence))
	builder.WriteString(", ")
	builder.WriteString("completion_mark=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionMark))
	builder.WriteByte(')')
	return builder.String()
}

// AdjustmentEvents is a parsable slice of AdjustmentEvent.
type AdjustmentEvents []*AdjustmentEvent
