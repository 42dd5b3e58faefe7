package domain

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gocql/gocql"
)

type ModificationType string

const (
	DateChange   ModificationType = "date_change"
	RoomUpgrade  ModificationType = "room_upgrade"
	GuestCount   ModificationType = "guest_count"
	Cancellation ModificationType = "cancellation"
)

type TimeUUID gocql.UUID

func (t TimeUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(gocql.UUID(t).String())
}

// ModificationRecord is one row of the append-only change ledger kept
// for every booking. PriceAdjustment is signed: positive for fees,
// negative for refunds. Records are immutable once written.
type ModificationRecord struct {
	ID              TimeUUID         `json:"id"`
	BookingID       string           `json:"booking_id"`
	Type            ModificationType `json:"type"`
	OldValue        string           `json:"old_value"`
	NewValue        string           `json:"new_value"`
	PriceAdjustment int64            `json:"price_adjustment"`
	Timestamp       time.Time        `json:"timestamp"`
	Reason          string           `json:"reason"`
}

type ModificationRecords []*ModificationRecord

func (records ModificationRecords) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(records)
}
