package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectVisualization(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		detected bool
	}{
		{"show me a bar chart", "Bar Chart", true},
		{"PIE CHART please", "Pie Chart", true},
		{"give me the summary", "Summary", true},
		{"switch to histogram view", "Histogram", true},
		{"how many customers are there", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := DetectVisualization(tc.input)
			require.Equal(t, tc.detected, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGoogleSpeakerSay(t *testing.T) {
	audio := []byte("mp3-bytes")
	var gotQuery, gotLang string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLang = r.URL.Query().Get("tl")
		w.Write(audio)
	}))
	defer server.Close()

	var sunk []byte
	speaker := NewGoogleSpeaker("en", func(mp3 []byte) error {
		sunk = mp3
		return nil
	})
	speaker.baseURL = server.URL

	require.NoError(t, speaker.Say(context.Background(), "two customers found"))
	require.Equal(t, audio, sunk)
	require.Equal(t, "two customers found", gotQuery)
	require.Equal(t, "en", gotLang)
}

func TestGoogleSpeakerTruncatesLongText(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte("x"))
	}))
	defer server.Close()

	speaker := NewGoogleSpeaker("en", func([]byte) error { return nil })
	speaker.baseURL = server.URL

	long := strings.Repeat("insight ", 60)
	require.NoError(t, speaker.Say(context.Background(), long))
	require.LessOrEqual(t, len(gotQuery), maxUtteranceChars)
	require.NotEmpty(t, gotQuery)
}

func TestGoogleSpeakerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	speaker := NewGoogleSpeaker("en", func([]byte) error { return nil })
	speaker.baseURL = server.URL

	err := speaker.Say(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=503")
}

func TestGoogleSpeakerEmptyTextNoRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	speaker := NewGoogleSpeaker("en", func([]byte) error { return nil })
	speaker.baseURL = server.URL

	require.NoError(t, speaker.Say(context.Background(), "   "))
	require.False(t, called)
}
