// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questforge/ent/planevent"
)

// PlanEvent is the model entity for the PlanEvent schema.
type PlanEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Opaque plan identifier, assigned at record time
	PlanID string `json:"plan_id,omitempty"`
	// Calendar date of the plan, YYYY-MM-DD
	PlanDate string `json:"plan_date,omitempty"`
	// Check-in day type: busy, normal, deep
	DayType string `json:"day_type,omitempty"`
	// Sum of quest minutes after reconciliation
	TotalMinutes int `json:"total_minutes,omitempty"`
	// QuestCount holds the value of the "quest_count" field.
	QuestCount int `json:"quest_count,omitempty"`
	// Finalized quests as emitted by the policy engine
	Quests []map[string]interface{} `json:"quests,omitempty"`
	// Policy trace entries explaining each transformation
	Rationale []map[string]interface{} `json:"rationale,omitempty"`
	// Whether candidates came from the deterministic fallback
	FallbackUsed bool `json:"fallback_used,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case planevent.FieldQuests, planevent.FieldRationale:
			values[i] = new([]byte)
		case planevent.FieldFallbackUsed:
			values[i] = new(sql.NullBool)
		case planevent.FieldID, planevent.FieldSequence, planevent.FieldTotalMinutes, planevent.FieldQuestCount:
			values[i] = new(sql.NullInt64)
		case planevent.FieldPlanID, planevent.FieldPlanDate, planevent.FieldDayType:
			values[i] = new(sql.NullString)
		case planevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanEvent fields.
func (_m *PlanEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case planevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case planevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case planevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case planevent.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case planevent.FieldPlanDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_date", values[i])
			} else if value.Valid {
				_m.PlanDate = value.String
			}
		case planevent.FieldDayType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day_type", values[i])
			} else if value.Valid {
				_m.DayType = value.String
			}
		case planevent.FieldTotalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_minutes", values[i])
			} else if value.Valid {
				_m.TotalMinutes = int(value.Int64)
			}
		case planevent.FieldQuestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quest_count", values[i])
			} else if value.Valid {
				_m.QuestCount = int(value.Int64)
			}
		case planevent.FieldQuests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quests); err != nil {
					return fmt.Errorf("unmarshal field quests: %w", err)
				}
			}
		case planevent.FieldRationale:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rationale); err != nil {
					return fmt.Errorf("unmarshal field rationale: %w", err)
				}
			}
		case planevent.FieldFallbackUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_used", values[i])
			} else if value.Valid {
				_m.FallbackUsed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlanEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlanEvent.
// Note that you need to call PlanEvent.Unwrap() before calling this method if this PlanEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanEvent) Update() *PlanEventUpdateOne {
	return NewPlanEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanEvent) Unwrap() *PlanEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlanEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("plan_date=")
	builder.WriteString(_m.PlanDate)
	builder.WriteString(", ")
	builder.WriteString("day_type=")
	builder.WriteString(_m.DayType)
	builder.WriteString(", ")
	builder.WriteString("total_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMinutes))
	builder.WriteString(", ")
	builder.WriteString("quest_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestCount))
	builder.WriteString(", ")
	builder.WriteString("quests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quests))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rationale))
	builder.WriteString(", ")
	builder.WriteString("fallback_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackUsed))
	builder.WriteByte(')')
	return builder.String()
}

// PlanEvents is a parsable slice of PlanEvent.
type PlanEvents []*PlanEvent
