package caching

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := "https://example.com/page"
	if _, ok := cache.Get(url); ok {
		t.Error("Get() hit on empty cache")
	}

	if err := cache.Set(url, []byte("<html>body</html>")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok := cache.Get(url)
	if !ok {
		t.Fatal("Get() missed after Set()")
	}
	if string(data) != "<html>body</html>" {
		t.Errorf("Get() = %q", data)
	}

	if _, ok := cache.Get("https://example.com/other"); ok {
		t.Error("Get() hit for a different URL")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com", []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, ok := cache.Get("https://example.com"); ok {
		t.Error("Get() hit on an expired entry")
	}
}

func TestCacheZeroTTLNeverExpires(t *testing.T) {
	cache, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com", []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, ok := cache.Get("https://example.com"); !ok {
		t.Error("Get() missed with TTL disabled")
	}
}
