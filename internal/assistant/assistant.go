// Package assistant turns command lines into contact book operations and
// renders their replies.
package assistant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/contact-book/internal/book"
	"github.com/rcliao/contact-book/internal/model"
)

// Replies shown to the user.
const (
	MsgGreeting        = "How can I help you?"
	MsgGoodbye         = "Good bye!"
	MsgInvalidCommand  = "Invalid command."
	MsgMissingArgument = "Enter the argument for the command."
	MsgInvalidValue    = "Invalid value. Check the name, phone (10 digits) or date (DD.MM.YYYY)."
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgContactDeleted  = "Contact deleted."
	MsgContactNotFound = "Contact not found."
	MsgBirthdayUpdated = "Birthday updated."
	MsgNoUpcoming      = "No upcoming birthdays next week."
)

// ErrMissingArgument is returned by a handler given fewer arguments than it needs.
var ErrMissingArgument = errors.New("missing argument")

// Assistant dispatches parsed commands against a single book.
type Assistant struct {
	Book       *book.Book
	Now        func() time.Time
	WindowDays int
	Logger     *zap.Logger

	dirty bool
}

type handlerFunc func(a *Assistant, args []string) (string, error)

type command struct {
	handler  handlerFunc
	minArgs  int
	mutating bool
}

var commands = map[string]command{
	"hello":         {handler: (*Assistant).hello},
	"add":           {handler: (*Assistant).add, minArgs: 2, mutating: true},
	"change":        {handler: (*Assistant).change, minArgs: 2, mutating: true},
	"phone":         {handler: (*Assistant).phone, minArgs: 1},
	"all":           {handler: (*Assistant).all},
	"add-birthday":  {handler: (*Assistant).addBirthday, minArgs: 2, mutating: true},
	"show-birthday": {handler: (*Assistant).showBirthday, minArgs: 1},
	"birthdays":     {handler: (*Assistant).birthdays},
	"delete":        {handler: (*Assistant).remove, minArgs: 1, mutating: true},
	"search":        {handler: (*Assistant).search, minArgs: 1},
}

// New returns an assistant over b that reads the current time from the clock.
func New(b *book.Book, windowDays int, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	if windowDays < 0 {
		windowDays = book.DefaultWindowDays
	}
	return &Assistant{Book: b, Now: time.Now, WindowDays: windowDays, Logger: logger}
}

// ParseInput splits a line on whitespace into a lower-cased command and its
// arguments. An empty line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsExit reports whether cmd ends the session.
func IsExit(cmd string) bool {
	return cmd == "close" || cmd == "exit"
}

// Mutates reports whether cmd can change the book.
func Mutates(cmd string) bool {
	return commands[cmd].mutating
}

// Dirty reports whether a mutating command has run since the last MarkSaved.
func (a *Assistant) Dirty() bool { return a.dirty }

// MarkSaved clears the dirty flag after the book was persisted.
func (a *Assistant) MarkSaved() { a.dirty = false }

// Handle runs one input line. exit is true for close and exit; saving is left
// to the caller.
func (a *Assistant) Handle(line string) (reply string, exit bool) {
	cmd, args := ParseInput(line)
	switch {
	case cmd == "":
		return "", false
	case IsExit(cmd):
		return MsgGoodbye, true
	}
	return a.Run(cmd, args), false
}

// Run executes cmd with args and converts every failure into a generic reply.
func (a *Assistant) Run(cmd string, args []string) string {
	c, ok := commands[cmd]
	if !ok {
		a.Logger.Debug("Unknown command", zap.String("command", cmd))
		return MsgInvalidCommand
	}

	reply, err := a.call(c, args)
	if err != nil {
		a.Logger.Debug("Command failed",
			zap.String("command", cmd),
			zap.Strings("args", args),
			zap.Error(err))
		return replyForError(err)
	}
	if c.mutating {
		a.dirty = true
	}
	return reply
}

func (a *Assistant) call(c command, args []string) (string, error) {
	if len(args) < c.minArgs {
		return "", fmt.Errorf("%w: want %d, got %d", ErrMissingArgument, c.minArgs, len(args))
	}
	return c.handler(a, args)
}

func replyForError(err error) string {
	if errors.Is(err, ErrMissingArgument) {
		return MsgMissingArgument
	}
	return MsgInvalidValue
}

func (a *Assistant) hello(_ []string) (string, error) {
	return MsgGreeting, nil
}

func (a *Assistant) add(args []string) (string, error) {
	status, err := a.Book.AddOrUpdatePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	if status == book.Added {
		return MsgContactAdded, nil
	}
	return MsgContactUpdated, nil
}

func (a *Assistant) change(args []string) (string, error) {
	status, err := a.Book.ReplacePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	if status == book.NotFound {
		return MsgContactNotFound, nil
	}
	return MsgContactUpdated, nil
}

func (a *Assistant) phone(args []string) (string, error) {
	name := args[0]
	r, ok := a.Book.Lookup(name)
	if !ok {
		return MsgContactNotFound, nil
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("No phones set for %s.", name), nil
	}
	return fmt.Sprintf("The phone number for %s is %s.", name, phones[0]), nil
}

func (a *Assistant) all(_ []string) (string, error) {
	var lines []string
	for line := range a.Book.ListAll() {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	status, err := a.Book.SetBirthdayFor(args[0], args[1])
	if err != nil {
		return "", err
	}
	if status == book.NotFound {
		return MsgContactNotFound, nil
	}
	return MsgBirthdayUpdated, nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	name := args[0]
	bd, status := a.Book.BirthdayFor(name)
	switch status {
	case book.Found:
		return fmt.Sprintf("The birthday of %s is %s.", name, bd), nil
	case book.NoBirthday:
		return fmt.Sprintf("No birthday set for %s.", name), nil
	default:
		return fmt.Sprintf("Contact %s not found.", name), nil
	}
}

// birthdays takes an optional day count overriding the configured window.
func (a *Assistant) birthdays(args []string) (string, error) {
	window := a.WindowDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", &book.ValidationError{Field: "days", Value: args[0], Reason: "invalid day count"}
		}
		window = n
	}

	upcoming, err := a.Book.UpcomingBirthdays(a.Now(), window)
	if errors.Is(err, book.ErrNoUpcomingBirthdays) {
		return MsgNoUpcoming, nil
	}
	if err != nil {
		return "", err
	}
	return FormatCongratulations(upcoming), nil
}

func (a *Assistant) remove(args []string) (string, error) {
	a.Book.Remove(args[0])
	return MsgContactDeleted, nil
}

func (a *Assistant) search(args []string) (string, error) {
	found := a.Book.Search(strings.Join(args, " "))
	if len(found) == 0 {
		return book.NoContactsMessage, nil
	}
	lines := make([]string, len(found))
	for i, r := range found {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

// FormatCongratulations renders one "name: YYYY.MM.DD" line per entry.
func FormatCongratulations(cs []model.Congratulation) string {
	lines := make([]string, len(cs))
	for i, c := range cs {
		lines[i] = fmt.Sprintf("%s: %s", c.Name, c.Date.Format(model.CongratulationLayout))
	}
	return strings.Join(lines, "\n")
}
