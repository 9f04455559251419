package admin

import (
	"testing"
	"time"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "space separated", input: "2024-05-01 19:00", want: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)},
		{name: "datetime-local", input: "2024-05-01T18:30", want: time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)},
		{name: "iso seconds", input: "2025-10-31T19:30:00", want: time.Date(2025, 10, 31, 19, 30, 0, 0, time.UTC)},
		{name: "iso fraction", input: "2025-10-31T19:30:00.123456", want: time.Date(2025, 10, 31, 19, 30, 0, 123456000, time.UTC)},
		{name: "offset keeps wall clock", input: "2024-05-01T19:00:00-05:00", want: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)},
		{name: "zulu minutes", input: "2024-05-01T07:15Z", want: time.Date(2024, 5, 1, 7, 15, 0, 0, time.UTC)},
		{name: "surrounding space", input: "  2024-05-01 19:00 ", want: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)},
		{name: "empty", input: "", wantErr: true},
		{name: "date only", input: "2024-05-01", wantErr: true},
		{name: "bad month", input: "2024-13-01 19:00", wantErr: true},
		{name: "garbage", input: "tomorrow at seven", wantErr: true},
		{name: "single digit hour", input: "2024-05-01 7:00", wantErr: true},
		{name: "single digit hour with seconds", input: "2024-05-01T7:00:00", wantErr: true},
		{name: "single digit minute", input: "2024-05-01 19:5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeSlot(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeSlot(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTimeSlot(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeysMatchTokenSlices(t *testing.T) {
	tokens := []string{"2024-05-01 19:00", "1999-12-31 23:59", "2024-02-29 00:05"}

	for _, token := range tokens {
		parsed, err := ParseTimeSlot(token)
		if err != nil {
			t.Fatalf("ParseTimeSlot(%q) error = %v", token, err)
		}
		day, slot := Keys(parsed)
		if day.String() != token[:10] {
			t.Errorf("day key %s, want %s", day, token[:10])
		}
		if slot.String() != token[11:] {
			t.Errorf("slot key %s, want %s", slot, token[11:])
		}
	}
}
