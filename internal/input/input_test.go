package input

import (
	"reflect"
	"testing"
)

func TestAny(t *testing.T) {
	if (State{}).Any() {
		t.Error("empty state reported a held key")
	}
	for _, s := range []State{
		{Forward: true}, {Backward: true}, {StrafeLeft: true}, {StrafeRight: true},
		{Ascend: true}, {Descend: true},
		{YawLeft: true}, {YawRight: true}, {PitchUp: true}, {PitchDown: true},
	} {
		if !s.Any() {
			t.Errorf("%+v not reported as held", s)
		}
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur State
		want      []string
	}{
		{
			name: "no change",
			prev: State{Forward: true},
			cur:  State{Forward: true},
			want: nil,
		},
		{
			name: "press",
			prev: State{},
			cur:  State{Forward: true},
			want: []string{"W pressed"},
		},
		{
			name: "release",
			prev: State{YawLeft: true},
			cur:  State{},
			want: []string{"LEFT released"},
		},
		{
			name: "press and release in one frame, stable order",
			prev: State{Backward: true, PitchDown: true},
			cur:  State{Forward: true, StrafeLeft: true, PitchDown: true},
			want: []string{"W pressed", "A pressed", "S released"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transitions(tt.prev, tt.cur)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
