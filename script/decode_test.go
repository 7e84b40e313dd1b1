package script

import (
	"reflect"
	"testing"

	"ytembed/events"
)

func TestDecodeFloat(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  float64
	}{
		{"plain", "12.5", 12.5},
		{"integer", "3", 3},
		{"whitespace", " 1.5\n", 1.5},
		{"garbage", "NaN-ish", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeFloat(tt.reply); got != tt.want {
				t.Errorf("DecodeFloat(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestDecodeState(t *testing.T) {
	if got := DecodeState("1"); got != events.StatePlaying {
		t.Errorf("DecodeState(\"1\") = %v, want playing", got)
	}
	if got := DecodeState("garbage"); got != events.StateUnknown {
		t.Errorf("DecodeState garbage = %v, want unknown", got)
	}
}

func TestDecodeURL(t *testing.T) {
	u := DecodeURL("https://www.youtube.com/watch?v=abc123")
	if u == nil || u.Host != "www.youtube.com" {
		t.Fatalf("DecodeURL() = %v, want youtube watch URL", u)
	}
	if DecodeURL("") != nil {
		t.Error("DecodeURL(\"\") should be nil")
	}
}

func TestDecodeStringList(t *testing.T) {
	got := DecodeStringList(`["a1","b2"]`)
	if !reflect.DeepEqual(got, []string{"a1", "b2"}) {
		t.Errorf("DecodeStringList() = %v", got)
	}
	if DecodeStringList("not json") != nil {
		t.Error("malformed reply should decode to nil")
	}
}

func TestDecodeFloatList(t *testing.T) {
	got := DecodeFloatList(`[0.25,1,2]`)
	if !reflect.DeepEqual(got, []float64{0.25, 1, 2}) {
		t.Errorf("DecodeFloatList() = %v", got)
	}
}
