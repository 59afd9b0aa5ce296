package dbl

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp decodes the date strings the listing service uses into a time.Time.
// The service is not strict about the format, so a few layouts are tried.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler. Null and empty values decode to the
// zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("dbl: unrecognized date %q", s)
}

// BotStats is the statistics object behind the server-count endpoint.
type BotStats struct {
	ServerCount int   `json:"server_count"`
	Shards      []int `json:"shards"`
	ShardCount  int   `json:"shard_count"`
}

// BotInfo is the full metadata the service keeps for a listed bot. Fields pass
// through as the service sent them; nothing beyond the date is coerced.
type BotInfo struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientid"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discrim"`
	Avatar        string    `json:"avatar"`
	DefAvatar     string    `json:"defAvatar"`
	Library       string    `json:"lib"`
	Prefix        string    `json:"prefix"`
	ShortDesc     string    `json:"shortdesc"`
	LongDesc      string    `json:"longdesc"`
	Tags          []string  `json:"tags"`
	Website       string    `json:"website"`
	Support       string    `json:"support"`
	GitHub        string    `json:"github"`
	Owners        []string  `json:"owners"`
	Invite        string    `json:"invite"`
	Vanity        string    `json:"vanity"`
	Date          Timestamp `json:"date"`
	CertifiedBot  bool      `json:"certifiedBot"`
	Legacy        bool      `json:"legacy"`
	Points        int       `json:"points"`
	ServerCount   int       `json:"server_count"`
	ShardCount    int       `json:"shard_count"`
	Shards        []int     `json:"shards"`
}

// BotsPage is one page of the bot listing.
type BotsPage struct {
	Results []BotInfo `json:"results"`
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
	Count   int       `json:"count"`
	Total   int       `json:"total"`
}

// UserInfo is the metadata the service keeps for a site user.
type UserInfo struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Discriminator string     `json:"discrim"`
	Avatar        string     `json:"avatar"`
	DefAvatar     string     `json:"defAvatar"`
	Bio           string     `json:"bio"`
	Banner        string     `json:"banner"`
	Social        UserSocial `json:"social"`
	Color         string     `json:"color"`
	Supporter     bool       `json:"supporter"`
	CertifiedDev  bool       `json:"certifiedDev"`
	Mod           bool       `json:"mod"`
	WebMod        bool       `json:"webMod"`
	Admin         bool       `json:"admin"`
}

// UserSocial holds a user's linked social accounts.
type UserSocial struct {
	YouTube   string `json:"youtube"`
	Reddit    string `json:"reddit"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	GitHub    string `json:"github"`
}

// Voter is one entry of the votes endpoint when full user objects are requested.
type Voter struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discrim"`
	Avatar        string `json:"avatar"`
}

// VoteInfo is the result of the votes endpoint. Exactly one of the two slices is
// populated, depending on whether only ids were requested.
type VoteInfo struct {
	Voters []Voter
	IDs    []string
}
