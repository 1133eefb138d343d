package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
)

// RecognitionResult is the two-field contract front-ends consume: Text holds
// the transcription on success and an error description otherwise.
type RecognitionResult struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

// Provider abstracts speech transcription and synthesis. The tutor engine
// never depends on how either works, only on this result shape.
type Provider interface {
	Recognize(ctx context.Context, audio []byte) RecognitionResult
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

const (
	openAITranscribeURL = "https://api.openai.com/v1/audio/transcriptions"
	openAISpeechURL     = "https://api.openai.com/v1/audio/speech"
	whisperModel        = "whisper-1"
	ttsModel            = "tts-1"
	ttsVoice            = "alloy"
)

// WhisperProvider transcribes and synthesizes speech through the OpenAI
// audio API.
type WhisperProvider struct {
	apiKey string
	client *http.Client
}

func NewWhisperProvider(apiKey string) (*WhisperProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required for speech provider")
	}
	return &WhisperProvider{apiKey: apiKey, client: &http.Client{}}, nil
}

func (p *WhisperProvider) Recognize(ctx context.Context, audio []byte) RecognitionResult {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return RecognitionResult{Success: false, Text: fmt.Sprintf("failed to build request: %v", err)}
	}
	if _, err := part.Write(audio); err != nil {
		return RecognitionResult{Success: false, Text: fmt.Sprintf("failed to write audio: %v", err)}
	}
	writer.WriteField("model", whisperModel)
	writer.WriteField("response_format", "text")
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAITranscribeURL, &body)
	if err != nil {
		return RecognitionResult{Success: false, Text: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[ERROR] Whisper transcription request failed: %v", err)
		return RecognitionResult{Success: false, Text: fmt.Sprintf("transcription failed: %v", err)}
	}
	defer resp.Body.Close()

	transcript, err := io.ReadAll(resp.Body)
	if err != nil {
		return RecognitionResult{Success: false, Text: fmt.Sprintf("failed to read transcription: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Whisper transcription returned status %d", resp.StatusCode)
		return RecognitionResult{Success: false, Text: fmt.Sprintf("transcription failed with status %d", resp.StatusCode)}
	}

	return RecognitionResult{Success: true, Text: string(bytes.TrimSpace(transcript))}
}

// Synthesize returns spoken audio for the text, or nil with an error when
// synthesis is unavailable. The language code only informs logging; the TTS
// model infers the language from the text itself.
func (p *WhisperProvider) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	payload := fmt.Sprintf(`{"model":%q,"input":%q,"voice":%q}`, ttsModel, text, ttsVoice)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAISpeechURL, bytes.NewBufferString(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[ERROR] Speech synthesis request failed (%s): %v", languageCode, err)
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Speech synthesis returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("speech synthesis failed with status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}

	return audio, nil
}
