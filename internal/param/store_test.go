package param

import (
	"testing"

	"github.com/quartzweave/ringforge/internal/geom"
)

func TestStoreStartsWithDefaults(t *testing.T) {
	s := NewStore()
	if s.Value() != geom.DefaultParams() {
		t.Errorf("initial value: got %+v", s.Value())
	}
}

func TestSetAndValue(t *testing.T) {
	s := NewStore()
	p := geom.DefaultParams()
	p.TwistDegrees = 270
	p.ArcDegrees = 180

	s.Set(p)
	if s.Value() != p {
		t.Errorf("got %+v, want %+v", s.Value(), p)
	}
}

func TestUpdateSingleField(t *testing.T) {
	s := NewStore()
	s.Update(func(p *geom.Params) { p.Taper = -0.5 })

	got := s.Value()
	if got.Taper != -0.5 {
		t.Errorf("taper: got %f, want -0.5", got.Taper)
	}

	// Untouched fields keep their defaults.
	want := geom.DefaultParams()
	want.Taper = -0.5
	if got != want {
		t.Errorf("update touched other fields: got %+v, want %+v", got, want)
	}
}

func TestSubscribeReplaysAndNotifies(t *testing.T) {
	s := NewStore()

	var seen []geom.Params
	s.Subscribe(func(p geom.Params) {
		seen = append(seen, p)
	})

	if len(seen) != 1 || seen[0] != geom.DefaultParams() {
		t.Fatalf("replay: got %+v", seen)
	}

	s.Update(func(p *geom.Params) { p.TwistDegrees = 90 })
	if len(seen) != 2 {
		t.Fatalf("listener calls: got %d, want 2", len(seen))
	}
	if seen[1].TwistDegrees != 90 {
		t.Errorf("notified value: got %f, want 90", seen[1].TwistDegrees)
	}
}
