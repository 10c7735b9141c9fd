package quiz

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/biovozrast/bioage-bot/internal/metrics"
)

const (
	CmdStart = "start"
	CmdTest  = "test"
	CmdHelp  = "help"
)

// Event is an inbound user action, already normalized by an adapter.
type Event interface{ User() string }

type Command struct {
	UserID string
	Name   string // start|test|help
}

func (c Command) User() string { return c.UserID }

type Text struct {
	UserID  string
	Content string
}

func (t Text) User() string { return t.UserID }

// Outbound is one instruction for the adapter to render. A non-empty Options
// slice asks for a choice affordance (buttons/keyboard); Clear removes any
// previously shown one. Delay is a cosmetic pacing hint adapters may ignore.
type Outbound struct {
	Body    string
	Options []string
	Clear   bool
	Delay   time.Duration
}

type Config struct {
	MinAge int
	MaxAge int
}

// pacing between a confirmation and the message that follows it.
const pacing = 500 * time.Millisecond

// Engine is the transport-agnostic state machine plus scoring. All events for
// one user id are serialized through a per-user mutex, so a double-submit is
// processed in arrival order rather than last-write-wins.
type Engine struct {
	bank  *Bank
	store Store
	cfg   Config
	log   *logrus.Entry
	m     *metrics.Metrics
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(bank *Bank, store Store, cfg Config, log *logrus.Entry, m *metrics.Metrics) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Engine{
		bank:  bank,
		store: store,
		cfg:   cfg,
		log:   log,
		m:     m,
		now:   time.Now,
		locks: map[string]*sync.Mutex{},
	}
}

// Handle computes the transition for one inbound event and returns the
// outbound messages to render, in order.
func (e *Engine) Handle(ev Event) []Outbound {
	uid := ev.User()
	lk := e.userLock(uid)
	lk.Lock()
	defer lk.Unlock()

	switch ev := ev.(type) {
	case Command:
		e.countEvent("command")
		switch ev.Name {
		case CmdStart, CmdTest:
			return e.restart(uid)
		default: // help and anything unrecognized
			e.touch(uid)
			return []Outbound{{Body: msgHelp}}
		}
	case Text:
		e.countEvent("text")
		s, ok := e.store.Get(uid)
		if !ok {
			// First contact from an unknown user: implicit /start.
			return e.restart(uid)
		}
		s.LastActivity = e.now()
		text := strings.TrimSpace(ev.Content)
		switch s.Phase {
		case PhaseAwaitingAge:
			return e.handleAge(s, text)
		case PhaseInQuiz:
			return e.handleAnswer(s, text)
		default:
			e.store.Put(uid, s)
			return []Outbound{{Body: msgFinishedReminder}}
		}
	}
	return nil
}

// restart replaces any prior session unconditionally.
func (e *Engine) restart(uid string) []Outbound {
	e.store.Put(uid, NewSession(uid, e.now()))
	if e.m != nil {
		e.m.SessionsStarted.Inc()
	}
	e.log.WithField("user_id", uid).Info("session started")
	return []Outbound{
		{Body: msgWelcome, Clear: true},
		{Body: msgAgePrompt, Delay: pacing},
	}
}

func (e *Engine) handleAge(s Session, text string) []Outbound {
	age, err := strconv.Atoi(text)
	if err != nil || age < e.cfg.MinAge || age > e.cfg.MaxAge {
		e.countInvalid("age")
		e.store.Put(s.UserID, s)
		return []Outbound{{Body: msgInvalidAge}}
	}
	s.PassportAge = age
	s.Phase = PhaseInQuiz
	s.Current = 0
	s.Scores = nil
	e.store.Put(s.UserID, s)
	return []Outbound{
		{Body: fmt.Sprintf(msgAgeAccepted, age, e.bank.Len())},
		e.question(0, pacing),
	}
}

func (e *Engine) handleAnswer(s Session, text string) []Outbound {
	opt, ok := e.bank.Questions[s.Current].Match(text)
	if !ok {
		e.countInvalid("option")
		e.store.Put(s.UserID, s)
		return []Outbound{{Body: msgSelectOption}}
	}
	s.Scores = append(s.Scores, opt.Value)
	s.Current++
	if s.Current < e.bank.Len() {
		e.store.Put(s.UserID, s)
		return []Outbound{e.question(s.Current, pacing)}
	}

	s.Phase = PhaseFinished
	e.store.Put(s.UserID, s)
	res := Score(s.PassportAge, s.Scores)
	if e.m != nil {
		e.m.QuizzesFinished.WithLabelValues(string(res.Outcome())).Inc()
	}
	e.log.WithFields(logrus.Fields{
		"user_id": s.UserID,
		"bio_age": res.BioAge,
		"outcome": res.Outcome(),
	}).Info("quiz finished")
	return []Outbound{{Body: res.Format(), Clear: true, Delay: pacing}}
}

// question renders the prompt at index, prefixing a block header where the
// bank configures one.
func (e *Engine) question(index int, delay time.Duration) Outbound {
	q := e.bank.Questions[index]
	var sb strings.Builder
	if t := e.bank.BlockTitle(index); t != "" {
		sb.WriteString(t)
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "❓ Вопрос %d/%d\n\n%s", index+1, e.bank.Len(), q.Text)

	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	return Outbound{Body: sb.String(), Options: opts, Delay: delay}
}

func (e *Engine) touch(uid string) {
	if s, ok := e.store.Get(uid); ok {
		s.LastActivity = e.now()
		e.store.Put(uid, s)
	}
}

func (e *Engine) userLock(uid string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lk, ok := e.locks[uid]
	if !ok {
		lk = &sync.Mutex{}
		e.locks[uid] = lk
	}
	return lk
}

func (e *Engine) countEvent(kind string) {
	if e.m != nil {
		e.m.EventsTotal.WithLabelValues(kind).Inc()
	}
}

func (e *Engine) countInvalid(kind string) {
	if e.m != nil {
		e.m.InvalidInput.WithLabelValues(kind).Inc()
	}
}
