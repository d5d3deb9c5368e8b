package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"tour-curation-service/internal/domain"
)

func samplePOIs() []domain.Place {
	return []domain.Place{
		{ID: "1", Name: "Café Fontana", Category: "cafe", Coordinates: domain.Coordinates{Lat: 49.7968, Lon: 9.9312}},
		{ID: "2", Name: "Unbenannter Ort", Category: "bar", Coordinates: domain.Coordinates{Lat: 49.7945, Lon: 9.9293}},
	}
}

func TestMemoryPOICacheRoundTrip(t *testing.T) {
	c := NewMemoryPOICache()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected a miss for an unknown key")
	}

	c.Put(ctx, "Genuss-49.79-9.93-2000", samplePOIs())

	got, ok := c.Get(ctx, "Genuss-49.79-9.93-2000")
	if !ok {
		t.Fatal("expected a hit after put")
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].Name != "Unbenannter Ort" {
		t.Fatalf("unexpected cached places: %+v", got)
	}
}

func TestRedisPOICacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisPOICache("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected a miss for an unknown key")
	}

	c.Put(ctx, "Natur-49.79-9.93-4000", samplePOIs())

	got, ok := c.Get(ctx, "Natur-49.79-9.93-4000")
	if !ok {
		t.Fatal("expected a hit after put")
	}
	if len(got) != 2 || got[0].Category != "cafe" {
		t.Fatalf("unexpected cached places: %+v", got)
	}
}

func TestRedisPOICacheDegradesToMiss(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisPOICache("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A value that is not a place list should read as a miss, not an error.
	mr.Set("poi:bad", "not json")
	if _, ok := c.Get(context.Background(), "bad"); ok {
		t.Fatal("expected undecodable value to degrade to a miss")
	}
}

func TestRedisPOICacheRejectsBadURL(t *testing.T) {
	if _, err := NewRedisPOICache("not-a-url"); err == nil {
		t.Fatal("expected an error for a malformed URL")
	}
}
