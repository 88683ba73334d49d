package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqClient calls Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	apiKey string
	model  string
	apiURL string
}

func NewGroqClient() *GroqClient {
	url := os.Getenv("GROQ_API_URL")
	if url == "" {
		url = defaultGroqURL
	}
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	return &GroqClient{
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  model,
		apiURL: url,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *GroqClient) ParseCommand(ctx context.Context, stageContext string, vocabulary []string, utterance string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GROQ_API_KEY")
	}
	if utterance == "" {
		return "", errors.New("empty utterance")
	}

	system := "You map user text for a food ordering assistant to exactly one command. " +
		"Reply with one line: an allowed command template with placeholders filled in, or the word unknown. " +
		"No explanations, no markdown, no quotes.\n\n" +
		"Current stage: " + stageContext + "\n" +
		"Allowed commands:\n" + strings.Join(vocabulary, "\n")

	payload := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: utterance},
		},
		Temperature: 0,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("groq api error: " + string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("empty groq response")
	}

	command := CleanCommand(parsed.Choices[0].Message.Content)
	if command == "" {
		return "", errors.New("groq returned no command")
	}

	return command, nil
}
