package gameid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRoomID returns a short hex identifier suitable for an
// auto-created room id. Uniqueness is enforced by the router's map
// insertion, not by this generator, so eight random bytes of entropy is
// plenty.
func GenerateRoomID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("gameid: failed to generate random bytes: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
