package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// GatheringPool is a named namespace grouping related gatherings.
type GatheringPool struct {
	GatheringPoolID string `json:"gatheringPoolId"`
	OwnerID         string `json:"ownerId"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	CreateAt        int64  `json:"createAt"`
}

// Gathering is one live multiplayer session hosted by a game server.
type Gathering struct {
	GatheringID string     `json:"gatheringId"`
	OwnerID     string     `json:"ownerId"`
	Name        string     `json:"name"`
	HostID      string     `json:"hostId"`
	IPAddress   string     `json:"ipAddress"`
	Port        int        `json:"port"`
	Secret      string     `json:"secret"`
	UserIDs     UserIDList `json:"userIds,omitempty"`
	CreateAt    int64      `json:"createAt"`
}

// Ready reports whether the game server behind the gathering has been
// assigned an address.
func (g Gathering) Ready() bool {
	return g.IPAddress != "" && g.Port > 0
}

// Addr returns the host:port a game client connects to, or "" while the
// gathering is not Ready.
func (g Gathering) Addr() string {
	if !g.Ready() {
		return ""
	}
	return net.JoinHostPort(g.IPAddress, strconv.Itoa(g.Port))
}

// Page is the cursor envelope shared by all list endpoints.
// An exhausted cursor (null on the wire) decodes to "".
type Page[T any] struct {
	Items         []T    `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// HasNext reports whether another page can be requested.
func (p *Page[T]) HasNext() bool { return p != nil && p.NextPageToken != "" }

// UserIDList is the participant allow-list of a gathering.
// On the wire it travels as a single comma-joined string.
type UserIDList []string

// ParseUserIDs splits a comma-joined list. Joining the result again yields
// s unchanged. The empty string parses to an empty, non-nil list, which
// CreateGathering still sends as "".
func ParseUserIDs(s string) UserIDList {
	if s == "" {
		return UserIDList{}
	}
	return UserIDList(strings.Split(s, ","))
}

// String joins the list with commas.
func (l UserIDList) String() string { return strings.Join(l, ",") }

// MarshalJSON encodes the list as a comma-joined JSON string.
func (l UserIDList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts either a comma-joined string or an array of strings.
func (l *UserIDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("userIds: %w", err)
		}
		*l = ids
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("userIds: %w", err)
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = ParseUserIDs(s)
	return nil
}
