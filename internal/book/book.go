// Package book holds the in-memory contact book: field validation, contact
// records and the upcoming birthdays query.
package book

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/rcliao/contact-book/internal/model"
	"github.com/rcliao/contact-book/pkg/dateutil"
)

// DefaultWindowDays is the birthday window used when none is configured.
const DefaultWindowDays = 7

// NoContactsMessage is what ListAll yields for an empty book.
const NoContactsMessage = "No contacts found."

// ErrNoUpcomingBirthdays is returned by UpcomingBirthdays when no contact
// falls inside the window.
var ErrNoUpcomingBirthdays = errors.New("no upcoming birthdays")

// Status is the outcome of a book operation that did not fail validation.
type Status int

const (
	Added Status = iota + 1
	Updated
	Found
	NotFound
	NoBirthday
)

func (s Status) String() string {
	switch s {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case NoBirthday:
		return "no_birthday"
	}
	return "unknown"
}

// Book maps contact names to records and remembers insertion order.
// It is not safe for concurrent use.
type Book struct {
	records map[Name]*Record
	order   []Name
}

// New returns an empty book.
func New() *Book {
	return &Book{records: make(map[Name]*Record)}
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.order) }

// Put stores r under its own name. A record already stored under that name is
// replaced in place and keeps its position.
func (b *Book) Put(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Lookup returns the record stored under name.
func (b *Book) Lookup(name string) (*Record, bool) {
	r, ok := b.records[Name(name)]
	return r, ok
}

// Remove deletes the record stored under name, if any.
func (b *Book) Remove(name string) {
	n := Name(name)
	if _, ok := b.records[n]; !ok {
		return
	}
	delete(b.records, n)
	if i := slices.Index(b.order, n); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

// Records iterates the stored records in insertion order.
func (b *Book) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, n := range b.order {
			if !yield(b.records[n]) {
				return
			}
		}
	}
}

// AddOrUpdatePhone appends phone to the record stored under name, creating the
// record first when there is none. The status is Added when the record was
// created and Updated otherwise.
func (b *Book) AddOrUpdatePhone(name, phone string) (Status, error) {
	if r, ok := b.Lookup(name); ok {
		if _, err := r.AddPhone(phone); err != nil {
			return 0, err
		}
		return Updated, nil
	}

	r, err := NewRecord(name)
	if err != nil {
		return 0, err
	}
	if _, err := r.AddPhone(phone); err != nil {
		return 0, err
	}
	b.Put(r)
	return Added, nil
}

// ReplacePhone makes phone the only phone of the record stored under name.
// The phone is not validated when the record does not exist.
func (b *Book) ReplacePhone(name, phone string) (Status, error) {
	r, ok := b.Lookup(name)
	if !ok {
		return NotFound, nil
	}
	if err := r.ReplacePhones(phone); err != nil {
		return 0, err
	}
	return Found, nil
}

// ListAll yields every record rendered as text, or NoContactsMessage alone when
// the book is empty. Each range over the sequence reads the current state.
func (b *Book) ListAll() iter.Seq[string] {
	return func(yield func(string) bool) {
		if b.Len() == 0 {
			yield(NoContactsMessage)
			return
		}
		for r := range b.Records() {
			if !yield(r.String()) {
				return
			}
		}
	}
}

// SetBirthdayFor overwrites the birthday of the record stored under name.
// The birthday text is only validated when the record exists.
func (b *Book) SetBirthdayFor(name, birthday string) (Status, error) {
	r, ok := b.Lookup(name)
	if !ok {
		return NotFound, nil
	}
	if err := r.SetBirthday(birthday); err != nil {
		return 0, err
	}
	return Updated, nil
}

// BirthdayFor returns the birthday of the record stored under name with Found,
// or NoBirthday / NotFound.
func (b *Book) BirthdayFor(name string) (Birthday, Status) {
	r, ok := b.Lookup(name)
	if !ok {
		return Birthday{}, NotFound
	}
	bd, ok := r.Birthday()
	if !ok {
		return Birthday{}, NoBirthday
	}
	return bd, Found
}

// UpcomingBirthdays lists the contacts to congratulate within windowDays of ref,
// both ends included. A birthday already past this year counts for the next
// one, and a Saturday or Sunday is congratulated on the following Monday.
// Results keep insertion order. ErrNoUpcomingBirthdays is returned when the
// list would be empty.
func (b *Book) UpcomingBirthdays(ref time.Time, windowDays int) ([]model.Congratulation, error) {
	today := dateutil.DateOf(ref)

	var out []model.Congratulation
	for r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		candidate := dateutil.AnniversaryIn(bd.Date(), today.Year())
		if candidate.Before(today) {
			candidate = dateutil.AnniversaryIn(bd.Date(), today.Year()+1)
		}
		candidate = dateutil.NextBusinessDay(candidate)

		if days := dateutil.DaysBetween(today, candidate); days >= 0 && days <= windowDays {
			out = append(out, model.Congratulation{Name: string(r.name), Date: candidate})
		}
	}
	if len(out) == 0 {
		return nil, ErrNoUpcomingBirthdays
	}
	return out, nil
}

// Search returns the records whose name or any phone contains query,
// ignoring case, in insertion order.
func (b *Book) Search(query string) []*Record {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []*Record
	for r := range b.Records() {
		if strings.Contains(strings.ToLower(string(r.name)), q) {
			out = append(out, r)
			continue
		}
		for _, p := range r.phones {
			if strings.Contains(string(p), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Contacts returns a flat copy of every record in insertion order.
func (b *Book) Contacts() []model.Contact {
	out := make([]model.Contact, 0, b.Len())
	for r := range b.Records() {
		c := model.Contact{Name: string(r.name), Phones: make([]string, 0, len(r.phones))}
		for _, p := range r.phones {
			c.Phones = append(c.Phones, string(p))
		}
		if r.birthday != nil {
			c.Birthday = r.birthday.String()
		}
		out = append(out, c)
	}
	return out
}

// RecordFromContact validates every field of c and builds a record.
func RecordFromContact(c model.Contact) (*Record, error) {
	r, err := NewRecord(c.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if _, err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if err := r.SetBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Restore builds a book from flat contacts, keeping their order. A later
// contact with a repeated name replaces the earlier one.
func Restore(contacts []model.Contact) (*Book, error) {
	b := New()
	for _, c := range contacts {
		r, err := RecordFromContact(c)
		if err != nil {
			return nil, err
		}
		b.Put(r)
	}
	return b, nil
}
