package chat

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Lkarthikeya/CODSOFT/internal/config"
	"github.com/Lkarthikeya/CODSOFT/internal/console"
	"github.com/google/uuid"
)

// Session runs one conversation on a pair of streams. It is stateless
// between exchanges: every reply depends on the current line alone.
type Session struct {
	logger    *slog.Logger
	reader    *console.Reader
	out       io.Writer
	responder *Responder
	botName   string
}

func NewSession(logger *slog.Logger, in io.Reader, out io.Writer, conf *config.Chat) *Session {
	return &Session{
		logger:    logger.With("component", "chat"),
		reader:    console.NewReader(in),
		out:       out,
		responder: NewResponder(),
		botName:   conf.BotName,
	}
}

// Run greets and then answers line by line until the user says goodbye
// or the input ends.
func (that *Session) Run() error {
	log := that.logger.With("conversation_id", uuid.NewString())
	log.Debug("conversation started")

	fmt.Fprintf(that.out, "🤖 %s: Hi! I'm your chatbot. Type 'bye' anytime to exit.\n\n", that.botName)

	for {
		fmt.Fprint(that.out, "You: ")

		input, err := that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Debug("conversation ended", "reason", "eof")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		reply, matched := that.responder.Reply(input)
		fmt.Fprintf(that.out, "%s: %s\n", that.botName, reply)
		log.Debug("message answered", "rule", matched)

		if IsFarewell(input) {
			log.Debug("conversation ended", "reason", "farewell")
			return nil
		}
	}
}
