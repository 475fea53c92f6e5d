package book

import (
	"fmt"
	"strings"
)

// NoBirthdayMarker is rendered in place of a birthday that was never set.
const NoBirthdayMarker = "None"

// Record is one contact: a name, its phones in insertion order and an
// optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the record's phones.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday reports the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates text and appends it. Duplicates are kept.
func (r *Record) AddPhone(text string) (Phone, error) {
	p, err := ParsePhone(text)
	if err != nil {
		return "", err
	}
	r.phones = append(r.phones, p)
	return p, nil
}

// ReplacePhones validates text and makes it the record's only phone.
func (r *Record) ReplacePhones(text string) error {
	p, err := ParsePhone(text)
	if err != nil {
		return err
	}
	r.phones = []Phone{p}
	return nil
}

// SetBirthday validates text and overwrites any existing birthday.
func (r *Record) SetBirthday(text string) error {
	b, err := ParseBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = string(p)
	}
	birthday := NoBirthdayMarker
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
