package dbl

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339 millis", `"2017-12-31T12:00:00.000Z"`, time.Date(2017, time.December, 31, 12, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2018-06-01T08:30:00Z"`, time.Date(2018, time.June, 1, 8, 30, 0, 0, time.UTC)},
		{"date only", `"2018-06-01"`, time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !ts.Time.Equal(tc.want) {
				t.Fatalf("got %v, want %v", ts.Time, tc.want)
			}
		})
	}
}

func TestTimestampUnmarshalGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestBotInfoDecodesDate(t *testing.T) {
	var info BotInfo
	payload := `{"id":"1","date":"2017-12-31T12:00:00.000Z"}`
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("unmarshal bot info: %v", err)
	}
	if info.Date.IsZero() {
		t.Fatalf("date field not converted")
	}
}
