package models

import "strings"

// Breed канонический идентификатор породы (lowercase)
// Используется и как подпись в UI, и как сегмент пути в API
type Breed string

// NoBreed means "nothing selected".
const NoBreed Breed = ""

// String implements fmt.Stringer.
func (b Breed) String() string {
	return string(b)
}

// IsNone reports whether b is the empty selection.
func (b Breed) IsNone() bool {
	return strings.TrimSpace(string(b)) == ""
}
