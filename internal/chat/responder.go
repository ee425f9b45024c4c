package chat

import "strings"

const (
	fallbackRule  = "fallback"
	fallbackReply = "Hmm 🤔 I don't understand that yet. Could you try rephrasing?"
)

// rule maps keywords, matched as substrings of the lowercased input, to
// one fixed reply.
type rule struct {
	name     string
	keywords []string
	reply    string
}

type Responder struct {
	rules []rule
}

// NewResponder registers the reply rules. Order matters: the first rule
// with a keyword hit answers.
func NewResponder() *Responder {
	return &Responder{
		rules: []rule{
			{
				name:     "greeting",
				keywords: []string{"hello", "hi"},
				reply:    "Hello! 👋 How can I help you today?",
			},
			{
				name:     "wellbeing",
				keywords: []string{"how are you"},
				reply:    "I'm just a program, but I'm doing great! 😄 How about you?",
			},
			{
				name:     "identity",
				keywords: []string{"your name"},
				reply:    "I'm a simple chatbot 🤖 built with rule-based logic.",
			},
			{
				name:     "farewell",
				keywords: []string{"bye", "goodbye"},
				reply:    "Goodbye! 👋 Have a wonderful day!",
			},
			{
				name:     "weather",
				keywords: []string{"weather"},
				reply:    "I can't check the weather 🌦️ right now, but you can ask a weather app!",
			},
		},
	}
}

// Reply returns the canned response for input together with the name of
// the rule that produced it.
func (that *Responder) Reply(input string) (string, string) {
	lowered := strings.ToLower(input)

	for _, rule := range that.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.reply, rule.name
			}
		}
	}

	return fallbackReply, fallbackRule
}

// IsFarewell reports whether input asks to end the conversation.
func IsFarewell(input string) bool {
	lowered := strings.ToLower(input)

	return strings.Contains(lowered, "bye") || strings.Contains(lowered, "goodbye")
}
