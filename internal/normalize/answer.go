package normalize

import "strconv"

// Kind discriminates the three shapes an atomic answer can take.
type Kind int

const (
	// KindAbsent marks a question the respondent left unanswered.
	KindAbsent Kind = iota
	KindString
	KindInt
)

// Answer is one normalized, indivisible survey answer attributed to a
// single field. Answers are value types and are never mutated after
// creation; they are comparable and usable as map keys.
type Answer struct {
	Kind Kind
	Str  string
	Int  int
}

// Absent returns the marker for an unanswered question.
func Absent() Answer {
	return Answer{Kind: KindAbsent}
}

// String returns a string-valued answer.
func String(s string) Answer {
	return Answer{Kind: KindString, Str: s}
}

// Int returns an integer-valued answer.
func Int(v int) Answer {
	return Answer{Kind: KindInt, Int: v}
}

// IsAbsent reports whether the answer is the absent marker.
func (a Answer) IsAbsent() bool {
	return a.Kind == KindAbsent
}

// Display returns the JSON representation of the answer value:
// nil for absent, the string, or the integer.
func (a Answer) Display() any {
	switch a.Kind {
	case KindString:
		return a.Str
	case KindInt:
		return a.Int
	default:
		return nil
	}
}

// Label returns the answer as a plain string, for suppression lists
// and sort keys. Absent answers yield the empty string.
func (a Answer) Label() string {
	switch a.Kind {
	case KindString:
		return a.Str
	case KindInt:
		return strconv.Itoa(a.Int)
	default:
		return ""
	}
}
