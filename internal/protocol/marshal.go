package protocol

import (
	"encoding/json"
	"fmt"
)

// DecodeClient parses a raw inbound frame into its concrete Go type by
// first peeking the `type` discriminant, then unmarshaling the full frame
// into the matching struct. An unknown or malformed type is a parse error
// reported only to the originating session.
func DecodeClient(raw []byte) (any, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("protocol: malformed frame: %w", err)
	}

	switch env.Type {
	case TypeCreateRoom:
		var m CreateRoom
		return decodeInto(raw, &m)
	case TypeJoinRoom:
		var m JoinRoom
		return decodeInto(raw, &m)
	case TypeJoin:
		var m Join
		return decodeInto(raw, &m)
	case TypeLeaveRoom:
		var m LeaveRoom
		return decodeInto(raw, &m)
	case TypeReady:
		var m Ready
		return decodeInto(raw, &m)
	case TypeRebuy:
		var m Rebuy
		return decodeInto(raw, &m)
	case TypeAction:
		var m Action
		return decodeInto(raw, &m)
	default:
		return nil, fmt.Errorf("protocol: unknown message type %q", env.Type)
	}
}

func decodeInto[T any](raw []byte, dst *T) (T, error) {
	if err := json.Unmarshal(raw, dst); err != nil {
		var zero T
		return zero, fmt.Errorf("protocol: invalid fields: %w", err)
	}
	return *dst, nil
}

// Encode marshals any outbound event struct to its JSON wire form.
func Encode(event any) ([]byte, error) {
	return json.Marshal(event)
}
