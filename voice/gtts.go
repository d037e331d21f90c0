package voice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTTSBaseURL = "https://translate.google.com/translate_tts"

// maxUtteranceChars is the longest text the TTS endpoint accepts per
// request; longer summaries are truncated at a word boundary.
const maxUtteranceChars = 200

// GoogleSpeaker fetches MP3 narration from the Google Translate TTS
// endpoint and hands the audio to a playback sink.
type GoogleSpeaker struct {
	baseURL  string
	language string
	client   *http.Client
	sink     func(mp3 []byte) error
}

// NewGoogleSpeaker builds a speaker that writes fetched audio through
// sink. The sink is typically an audio player or a file writer.
func NewGoogleSpeaker(language string, sink func(mp3 []byte) error) *GoogleSpeaker {
	if language == "" {
		language = "en"
	}
	return &GoogleSpeaker{
		baseURL:  defaultTTSBaseURL,
		language: language,
		client:   &http.Client{Timeout: 20 * time.Second},
		sink:     sink,
	}
}

// Say synthesizes text and pushes the audio to the sink.
func (s *GoogleSpeaker) Say(ctx context.Context, text string) error {
	text = truncateUtterance(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", s.language)
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build tts request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request tts audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts request failed status=%d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read tts audio: %w", err)
	}
	return s.sink(audio)
}

func truncateUtterance(text string) string {
	if len(text) <= maxUtteranceChars {
		return text
	}
	cut := text[:maxUtteranceChars]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
