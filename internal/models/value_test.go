package models

import "testing"

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"zero number", Number(0), "0"},
		{"integer number", Number(12), "12"},
		{"decimal number", Number(968853.123), "968853.123"},
		{"negative number", Number(-5.7144), "-5.7144"},
		{"text", Text("12.345"), "12.345"},
		{"empty text", Text(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("Value.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVesselRecord_HasPosition(t *testing.T) {
	v := VesselRecord{ID: "urn:mrn:imo:mmsi:230099999"}
	if v.HasPosition() {
		t.Error("HasPosition() = true for vessel without position")
	}

	v.Position = &Position{Latitude: 60.1, Longitude: 24.9}
	if !v.HasPosition() {
		t.Error("HasPosition() = false for vessel with position")
	}
}
