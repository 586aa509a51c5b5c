package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

func TestKV_Roundtrip(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(v) != "v" {
		t.Fatalf("expected v, got %q", v)
	}

	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after remove, got %v", err)
	}

	// Removing an absent key is not an error.
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove of absent key failed: %v", err)
	}
}

func TestKV_GetReturnsCopy(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	_ = kv.Set(ctx, "k", []byte("abc"))
	v, _ := kv.Get(ctx, "k")
	v[0] = 'z'

	again, _ := kv.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value must not alias returned slice, got %q", again)
	}
}
