package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert is a chat session with a specialized system instruction.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends a question and returns the expert's text answer.
func (e *Expert) Ask(ctx context.Context, question string) (string, error) {
	resp, err := e.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// NewAnalyst returns the portfolio analyst expert. The rendered dashboard is
// part of its system instruction so it answers from the user's actual
// figures.
func NewAnalyst(dashboard string) *Expert {
	instruction := `You are a personal investment analyst. The user holds a
small portfolio of index funds, and asks questions about it in plain
language, possibly in Spanish.

Answer from the dashboard below. It is the current state of the user's
portfolio: contributions, average purchase prices, current quotes and
returns. Be concise and quote the relevant figures. Never invent numbers
that are not in the dashboard, and never give buy or sell advice.

` + dashboard

	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}
