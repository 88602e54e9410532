package derived

import (
	"testing"
	"time"
)

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(time.Hour)

	s.Set("https://example.com/a", "en", KindSummary, []byte("a summary"))

	got, ok := s.Get("https://example.com/a", "en", KindSummary)
	if !ok {
		t.Fatal("Get missed a stored entry")
	}
	if string(got) != "a summary" {
		t.Errorf("Get = %q", got)
	}
}

func TestStore_KeyDimensions(t *testing.T) {
	s := NewStore(time.Hour)
	s.Set("https://example.com/a", "en", KindSummary, []byte("x"))

	tests := []struct {
		name     string
		url      string
		language string
		kind     Kind
	}{
		{"different url", "https://example.com/b", "en", KindSummary},
		{"different language", "https://example.com/a", "fr", KindSummary},
		{"different kind", "https://example.com/a", "en", KindKeywords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := s.Get(tt.url, tt.language, tt.kind); ok {
				t.Error("Get hit an entry stored under a different key")
			}
		})
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(time.Hour)
	s.Set("https://example.com/a", "en", KindSummary, []byte("x"))
	s.Set("https://example.com/a", "fr", KindTranslation, []byte("y"))

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", s.Len())
	}
	if _, ok := s.Get("https://example.com/a", "en", KindSummary); ok {
		t.Error("Get hit after Clear")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	s := NewStore(time.Hour)
	s.SetWithTTL("https://example.com/a", "en", KindAudio, []byte("x"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get("https://example.com/a", "en", KindAudio); ok {
		t.Error("Get hit an expired entry")
	}
}
