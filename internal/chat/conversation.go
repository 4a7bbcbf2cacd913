package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// fallbackReply is appended as the assistant turn when the gateway call
// fails. Gateway failures never surface as errors to the conversation user.
const fallbackReply = "Sorry, something went wrong while contacting the assistant. Please try again."

var (
	// ErrEmptyPrompt is returned when the prompt is blank after trimming.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrBusy is returned while a previous prompt is still in flight. One
	// outstanding request per conversation.
	ErrBusy = errors.New("a prompt is already in flight")
)

// Message is one turn of a conversation.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Conversation is an in-memory ordered message log over a Client. A busy
// flag rejects overlapping sends; history lives only for the process
// lifetime.
type Conversation struct {
	client Client

	mu       sync.Mutex
	messages []Message
	busy     bool
}

func NewConversation(client Client) *Conversation {
	return &Conversation{client: client}
}

// Send appends the user prompt, asks the client and appends the reply. A
// failed gateway call is absorbed: the fallback apology is appended as the
// assistant turn and returned without error. Returns ErrBusy while another
// prompt is in flight and ErrEmptyPrompt for blank input.
func (c *Conversation) Send(ctx context.Context, prompt string) (*Message, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.busy = true
	c.messages = append(c.messages, Message{
		ID:      uuid.NewString(),
		Role:    "user",
		Content: prompt,
	})
	c.mu.Unlock()

	reply, err := c.client.Ask(ctx, prompt)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		log.Printf("Chat gateway error: %v", err)
		reply = fallbackReply
	}

	message := Message{
		ID:      uuid.NewString(),
		Role:    "assistant",
		Content: reply,
	}
	c.messages = append(c.messages, message)
	return &message, nil
}

// Messages returns a copy of the conversation history in order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
