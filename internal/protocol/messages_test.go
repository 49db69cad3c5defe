package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeClientDispatchesByType(t *testing.T) {
	raw := []byte(`{"type":"join_room","table_id":"abc123","client_msg_id":"u1"}`)
	msg, err := DecodeClient(raw)
	require.NoError(t, err)

	join, ok := msg.(JoinRoom)
	require.True(t, ok)
	require.Equal(t, "abc123", join.TableID)
	require.Equal(t, "u1", join.ClientMsgID)
}

func TestDecodeClientRejectsUnknownType(t *testing.T) {
	_, err := DecodeClient([]byte(`{"type":"bogus"}`))
	require.Error(t, err)
}

func TestDecodeClientRejectsMalformedFrame(t *testing.T) {
	_, err := DecodeClient([]byte(`not json`))
	require.Error(t, err)
}

func TestActionRoundTrip(t *testing.T) {
	raw := []byte(`{"type":"action","table_id":"r1","hand_id":"h1","action":"raise","amount":20}`)
	msg, err := DecodeClient(raw)
	require.NoError(t, err)

	action := msg.(Action)
	kind, ok := action.ActionKind()
	require.True(t, ok)
	require.Equal(t, 20, action.Amount)

	encoded, err := Encode(ActionAck{Type: TypeActionAck, TableID: "r1", HandID: "h1", Action: action.Action})
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"action_ack"`)
	_ = kind
}
