package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/sajibprobook-creator/lensfocus/internal/logger"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

// MaxQuestionLength is the maximum allowed length for advisor questions.
const MaxQuestionLength = 500

const personaEN = "freelance cinematography studio business expert"
const personaBN = "ফ্রিল্যান্স সিনেমাটোগ্রাফি স্টুডিও ব্যবসায়িক বিশেষজ্ঞ"

// buildPrompt grounds the question in the snapshot's projects and ledger.
func buildPrompt(snap syncer.Snapshot, question, language string) (string, error) {
	projects, err := json.Marshal(snap.Projects)
	if err != nil {
		return "", fmt.Errorf("failed to encode projects: %w", err)
	}
	ledger, err := json.Marshal(snap.Transactions)
	if err != nil {
		return "", fmt.Errorf("failed to encode ledger: %w", err)
	}

	persona := personaEN
	reply := "English"
	if language == "BN" {
		persona = personaBN
		reply = "Bengali"
	}

	return fmt.Sprintf(
		"Context: Projects: %s. Ledger: %s. User: %s. Persona: %s. Reply in %s. Keep it concise and professional. Use markdown for lists if needed.",
		projects, ledger, question, persona, reply,
	), nil
}

// Ask sends the question with snapshot context to Gemini and returns the
// reply text. Language is "EN" or "BN" and controls persona and reply
// language.
func (c *Client) Ask(ctx context.Context, snap syncer.Snapshot, question, language string) (string, error) {
	if c.generator == nil {
		logger.Log.Error().Msg("Ask: advisor client not initialized")
		return "", fmt.Errorf("advisor client not initialized")
	}
	if question == "" {
		return "", fmt.Errorf("question is required")
	}
	if len(question) > MaxQuestionLength {
		question = question[:MaxQuestionLength]
	}

	prompt, err := buildPrompt(snap, question, language)
	if err != nil {
		return "", err
	}

	logger.Log.Debug().
		Int("project_count", len(snap.Projects)).
		Int("transaction_count", len(snap.Transactions)).
		Str("language", language).
		Msg("Ask: sending prompt to Gemini")

	timeoutCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(1000),
	}

	resp, err := c.generator.GenerateContent(timeoutCtx, ModelName, contents, config)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Ask: Gemini API call failed")
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response from Gemini")
	}

	text := resp.Text()
	if text == "" {
		logger.Log.Warn().Msg("Ask: no text content in Gemini response")
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}

// Greeting returns the advisor's opening line for the chosen language.
func Greeting(language string) string {
	if language == "BN" {
		return "হ্যালো। আমি ওমনি। আজ আপনার ব্যবসায়িক বৃদ্ধিতে কীভাবে সাহায্য করতে পারি?"
	}
	return "Hello. I am Omni. How can I assist your business growth today?"
}
