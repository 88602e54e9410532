// ABOUTME: Speech synthesis service backed by Google Cloud Text-to-Speech
// ABOUTME: Lazy client init and word-boundary chunking for long summaries

package speech

import (
	"bytes"
	"context"
	"strings"
	"sync"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"insightink-api/core/errors"
	"insightink-api/core/interfaces"
)

const (
	// maxChunkSize keeps each synthesis request under the API input limit.
	maxChunkSize = 1000

	defaultLanguageCode = "en-US"
	defaultVoiceName    = "en-US-Neural2-J"
)

// Service synthesizes speech from article summaries. The underlying client
// is created on first use so the API credentials are only required when
// audio is actually requested.
type Service struct {
	deps interfaces.Dependencies

	once    sync.Once
	client  *texttospeech.Client
	initErr error
}

// NewService creates a speech service.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Synthesize converts text to spoken audio. Long text is split into
// word-boundary chunks and the audio segments are concatenated. Failures
// return nil audio and an error; callers degrade to no audio.
func (s *Service) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &errors.ValidationError{Field: "text", Message: "cannot be empty"}
	}

	s.once.Do(func() {
		s.client, s.initErr = texttospeech.NewClient(context.Background())
	})
	if s.initErr != nil {
		return nil, errors.WrapError(s.initErr, "creating speech client")
	}

	voice := voiceFor(languageCode)

	var audio bytes.Buffer
	for _, chunk := range chunkWords(text, maxChunkSize) {
		req := &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{Text: chunk},
			},
			Voice: voice,
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding: texttospeechpb.AudioEncoding_OGG_OPUS,
			},
		}

		resp, err := s.client.SynthesizeSpeech(ctx, req)
		if err != nil {
			s.deps.Logger.Error("Speech synthesis failed", map[string]interface{}{
				"language": languageCode,
				"error":    err.Error(),
			})
			return nil, errors.WrapError(err, "synthesizing speech")
		}
		audio.Write(resp.AudioContent)
	}

	return audio.Bytes(), nil
}

// Close releases the underlying client if one was created.
func (s *Service) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// voiceFor picks voice parameters for a language code. English gets the
// tuned neural voice, everything else lets the API choose a neutral voice.
func voiceFor(languageCode string) *texttospeechpb.VoiceSelectionParams {
	if languageCode == "" || languageCode == "en" || languageCode == defaultLanguageCode {
		return &texttospeechpb.VoiceSelectionParams{
			LanguageCode: defaultLanguageCode,
			Name:         defaultVoiceName,
		}
	}
	return &texttospeechpb.VoiceSelectionParams{
		LanguageCode: languageCode,
		SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
	}
}

// chunkWords splits text into chunks of at most maxSize characters on word
// boundaries. A single word over the limit becomes its own chunk.
func chunkWords(text string, maxSize int) []string {
	var chunks []string
	var chunk string

	for _, word := range strings.Fields(text) {
		if chunk != "" && len(chunk)+len(word)+1 > maxSize {
			chunks = append(chunks, chunk)
			chunk = word
			continue
		}
		if chunk != "" {
			chunk += " "
		}
		chunk += word
	}
	if chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}
