package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// SessionTTL is the default lifetime of a session.
const SessionTTL = 7 * 24 * time.Hour

// Session maps a server-held token to a user. Sessions are created at login,
// read on every authenticated request, and deleted on logout. Expired rows are
// rejected at read time; there is no background cleanup.
type Session struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Token     string    `bson:"session_token" json:"session_token"`
	ExpiresAt FlexTime  `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Expired reports whether the session's expiry is strictly before now.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Time.Before(now)
}

// FlexTime is a time.Time that tolerates either a native BSON datetime or an
// RFC 3339 string when decoding. Session expiries written by earlier versions
// of the backend were serialized as strings.
type FlexTime struct {
	time.Time
}

// MarshalBSONValue encodes the time as a native BSON datetime.
func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

// UnmarshalBSONValue decodes a BSON datetime or an RFC 3339 string.
func (t *FlexTime) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	switch typ {
	case bson.TypeDateTime:
		ms, _, ok := bsoncore.ReadDateTime(data)
		if !ok {
			return fmt.Errorf("invalid BSON datetime")
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("invalid BSON string")
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		t.Time = parsed.UTC()
		return nil
	default:
		return fmt.Errorf("cannot decode %s into FlexTime", typ)
	}
}
