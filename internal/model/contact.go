// Package model defines the plain contact views shared by persistence and export.
package model

import "time"

// Contact is a flat copy of a contact record.
type Contact struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"` // DD.MM.YYYY
}

// Congratulation is one entry of the upcoming birthdays list.
type Congratulation struct {
	Name string    `json:"name"`
	Date time.Time `json:"congratulation_date"`
}

// CongratulationLayout is the layout congratulation dates are printed with.
const CongratulationLayout = "2006.01.02"
