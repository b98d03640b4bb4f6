package provider

import (
	"reflect"
	"testing"
	"time"
)

func TestMapProvider_TryGet(t *testing.T) {
	p := NewMapProvider(map[string]string{"k": "v"})

	v, ok, err := p.TryGet("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("TryGet(k) = %q, %v, %v", v, ok, err)
	}

	v, ok, err = p.TryGet("missing")
	if err != nil || ok || v != "" {
		t.Fatalf("TryGet(missing) = %q, %v, %v, want not found", v, ok, err)
	}
}

func TestMapProvider_CopiesInput(t *testing.T) {
	src := map[string]string{"k": "v"}
	p := NewMapProvider(src)
	src["k"] = "mutated"

	v, _, _ := p.TryGet("k")
	if v != "v" {
		t.Fatalf("TryGet(k) = %q, want %q", v, "v")
	}
}

func TestMapProvider_KeysPrefix(t *testing.T) {
	p := NewMapProvider(map[string]string{
		"app.name": "x",
		"app.port": "1",
		"db.url":   "u",
	})

	got := p.Keys("app.")
	want := []string{"app.name", "app.port"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys(app.) = %v, want %v", got, want)
	}

	if got := p.Keys(""); len(got) != 3 {
		t.Fatalf("Keys(\"\") = %v, want 3 keys", got)
	}
}

func TestMapProvider_SetFiresWatch(t *testing.T) {
	p := NewMapProvider(nil)
	ch := p.Watch()

	p.Set("k", "v")
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("watch did not fire on Set")
	}

	v, ok, _ := p.TryGet("k")
	if !ok || v != "v" {
		t.Fatalf("TryGet(k) = %q, %v", v, ok)
	}
}

func TestMapProvider_DeleteMissingIsSilent(t *testing.T) {
	p := NewMapProvider(map[string]string{"k": "v"})
	ch := p.Watch()

	p.Delete("missing")
	select {
	case <-ch:
		t.Fatalf("watch fired for a no-op delete")
	case <-time.After(50 * time.Millisecond):
	}

	p.Delete("k")
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("watch did not fire on Delete")
	}
	if _, ok, _ := p.TryGet("k"); ok {
		t.Fatalf("key survived Delete")
	}
}

func TestMapProvider_Replace(t *testing.T) {
	p := NewMapProvider(map[string]string{"old": "1"})
	ch := p.Watch()

	p.Replace(map[string]string{"new": "2"})
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("watch did not fire on Replace")
	}

	if _, ok, _ := p.TryGet("old"); ok {
		t.Fatalf("old key survived Replace")
	}
	v, ok, _ := p.TryGet("new")
	if !ok || v != "2" {
		t.Fatalf("TryGet(new) = %q, %v", v, ok)
	}
}
