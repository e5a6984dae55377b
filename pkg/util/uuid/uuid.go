// Package uuid provides the player identifier type.
package uuid

import (
	"crypto/md5"
	"fmt"
	"strconv"

	guuid "github.com/google/uuid"
)

// UUID identifies a player.
type UUID guuid.UUID

// String returns the canonical dashed form of the uuid,
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (i UUID) String() string {
	return guuid.UUID(i).String()
}

func (i UUID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(i.String())), nil
}
func (i *UUID) UnmarshalJSON(b []byte) (err error) {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("expected quoted uuid, but got %s: %w", b, err)
	}
	*i, err = Parse(s)
	return
}

// Parse decodes s into a UUID or returns an error. Accepts the
// standard dashed form as well as the raw hex encoding.
func Parse(s string) (UUID, error) {
	uuid, err := guuid.Parse(s)
	return UUID(uuid), err
}

// OfflinePlayerUUID derives the stable uuid of an unauthenticated
// player from their username.
func OfflinePlayerUUID(username string) UUID {
	const version = 3 // UUID v3
	uuid := md5.Sum([]byte("OfflinePlayer:" + username))
	uuid[6] = (uuid[6] & 0x0f) | uint8((version&0xf)<<4)
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // RFC 4122 variant
	return uuid
}
