// Package scan locates delimiters in text while honouring an escape character.
//
// A delimiter occurrence directly preceded by the escape character is never a
// match. The escape character itself is left in place: callers that need the
// literal delimiter back use Unescape once they are done splitting.
//
// All offsets are 0-based rune positions, not byte positions.
//
// # Usage
//
//	s := scan.New("Hello ${name}")
//	start := s.Find("${") // 6
//	end := s.Find("}")    // 12
//
//	parts := scan.Split(`a;b\;c;d`, ";", scan.DefaultEscape)
//	// []string{"a", `b\;c`, "d"}
package scan
