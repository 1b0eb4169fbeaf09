// ABOUTME: Chat-bot conversation flow on top of the interaction state machine
// ABOUTME: One automaton session per chat, kept in an expiring in-memory store
package bot

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/harper/pointwise/internal/automaton"
	"github.com/harper/pointwise/internal/logging"
	"github.com/harper/pointwise/internal/points"
)

// HelpText describes the bot's commands and processing methods
var HelpText = buildHelp()

func buildHelp() string {
	var b strings.Builder
	b.WriteString("**Point processing bot**\n\n")
	b.WriteString("Commands:\n")
	b.WriteString("/start - start over from the main menu\n")
	b.WriteString("/help - show this help\n")
	b.WriteString("/done - finish manual point entry\n")
	b.WriteString("/clear - discard the points typed so far\n")
	b.WriteString("/cancel - abort the current entry\n")
	b.WriteString("/default - generate the default number of random points\n\n")
	b.WriteString("Point format: x,y (for example 3.5,-2), decimal separator is a dot\n\n")
	b.WriteString("Methods:\n")
	for _, m := range points.Methods {
		b.WriteString(m.Choice() + ". " + m.Title() + "\n")
	}
	return b.String()
}

// chat is one conversation; mu serialises its interactions
type chat struct {
	mu      sync.Mutex
	session *automaton.Session

	// closed is set once the chat leaves the store; a closed chat is never reused
	closed atomic.Bool
}

// Reply is the bot's answer to one interaction, with the chat's state as it
// stood when the answer was produced
type Reply struct {
	ChatID string
	Text   string
	State  automaton.State
	Done   bool
}

// Bot routes chat messages to per-chat automaton sessions
type Bot struct {
	machine *automaton.Machine
	chats   *cache.Cache
	ttl     time.Duration
	mu      sync.Mutex // guards creation and removal in chats
	log     *log.Logger
}

// New creates a Bot whose idle chats expire after ttl
func New(machine *automaton.Machine, ttl time.Duration, logger *log.Logger) *Bot {
	if logger == nil {
		logger = logging.New("bot")
	}
	b := &Bot{
		machine: machine,
		chats:   cache.New(ttl, ttl/2),
		ttl:     ttl,
		log:     logger,
	}
	// called for expiry and for explicit removal alike
	b.chats.OnEvicted(func(id string, v interface{}) {
		v.(*chat).closed.Store(true)
		b.log.Debug("chat removed", "chat", id)
	})
	return b
}

// ActiveChats returns the number of chats currently held
func (b *Bot) ActiveChats() int {
	return b.chats.ItemCount()
}

// Start creates or resets a chat and returns the main menu.
// An empty chatID allocates a new one.
func (b *Bot) Start(chatID string) Reply {
	if chatID == "" {
		chatID = uuid.NewString()
	}

	c, _ := b.acquire(chatID)
	defer c.mu.Unlock()

	return b.restart(chatID, c)
}

// Send handles one message from a chat and returns the bot's reply.
// A message to an unknown or expired chat starts a new conversation and is
// otherwise ignored.
func (b *Bot) Send(chatID, text string) Reply {
	text = strings.TrimSpace(text)

	c, created := b.acquire(chatID)
	defer c.mu.Unlock()

	command := strings.ToLower(text)
	if command == "/help" {
		// a new chat is already fresh in the Menu state
		b.touch(chatID, c)
		return b.reply(chatID, c, HelpText)
	}
	if created || command == "/start" {
		return b.restart(chatID, c)
	}

	var out bytes.Buffer
	b.machine.Step(c.session, text, &out)

	if c.session.Done() {
		b.remove(chatID, c)
		b.log.Info("chat finished", "chat", chatID)
	} else {
		b.touch(chatID, c)
	}
	return b.reply(chatID, c, out.String())
}

// End clears and drops a chat, returning the farewell
func (b *Bot) End(chatID string) Reply {
	if v, ok := b.chats.Get(chatID); ok {
		c := v.(*chat)
		c.mu.Lock()
		c.session.Context.Clear()
		b.remove(chatID, c)
		c.mu.Unlock()
	}
	b.log.Info("chat ended", "chat", chatID)
	return Reply{ChatID: chatID, Text: "Goodbye!", State: automaton.Exit, Done: true}
}

// Session exposes a chat's session for diagnostics and tests.
// The session must not be read while messages for the chat are in flight.
func (b *Bot) Session(chatID string) (*automaton.Session, bool) {
	v, ok := b.chats.Get(chatID)
	if !ok {
		return nil, false
	}
	return v.(*chat).session, true
}

// restart resets c and renders the banner and main menu; c.mu must be held
func (b *Bot) restart(chatID string, c *chat) Reply {
	c.session.Reset()
	b.touch(chatID, c)
	b.log.Info("chat started", "chat", chatID)

	var out bytes.Buffer
	b.machine.Banner(&out)
	b.machine.Render(c.session, &out)
	return b.reply(chatID, c, out.String())
}

// reply snapshots the chat's state; c.mu must be held
func (b *Bot) reply(chatID string, c *chat, text string) Reply {
	return Reply{
		ChatID: chatID,
		Text:   text,
		State:  c.session.State,
		Done:   c.session.Done(),
	}
}

// acquire returns the live chat for id with its mutex held, creating the
// chat if needed. created reports whether the chat is new to this call.
func (b *Bot) acquire(id string) (c *chat, created bool) {
	for {
		c, created = b.chat(id)
		c.mu.Lock()
		if !c.closed.Load() {
			return c, created
		}
		// removed while we waited; take its replacement
		c.mu.Unlock()
	}
}

// chat returns the chat for id, creating it if needed
func (b *Bot) chat(id string) (*chat, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v, ok := b.chats.Get(id); ok {
		if c := v.(*chat); !c.closed.Load() {
			return c, false
		}
	}
	// drop a closed entry, or an expired one the janitor has not reached yet
	b.chats.Delete(id)

	c := &chat{session: automaton.NewSessionWithID(id)}
	b.chats.Set(id, c, cache.DefaultExpiration)
	return c, true
}

// remove drops c from the store and closes it
func (b *Bot) remove(id string, c *chat) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v, ok := b.chats.Get(id); ok && v.(*chat) == c {
		b.chats.Delete(id)
	}
	c.closed.Store(true)
}

// touch refreshes a live chat's expiry after activity
func (b *Bot) touch(id string, c *chat) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !c.closed.Load() {
		b.chats.Set(id, c, cache.DefaultExpiration)
	}
}
