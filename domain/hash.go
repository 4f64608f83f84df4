package domain

import (
	"fmt"
	"strings"
)

const emptyToken = "EMPTY"

// BuildHash derives the display tag FIRST2(ID):SEQUENCE:FIRSTWORD:LASTWORD.
// Words keep ASCII letters only and are uppercased. Blank content yields EMPTY:EMPTY.
// This is a lookup tag, not a digest.
func BuildHash(id string, sequence int, content string) string {
	prefix := firstTwo(id)
	words := strings.FieldsFunc(strings.TrimFunc(content, isControlOrSpace), isASCIISpace)
	if len(words) == 0 {
		return fmt.Sprintf("%s:%d:%s:%s", prefix, sequence, emptyToken, emptyToken)
	}
	first := lettersOnly(words[0])
	last := lettersOnly(words[len(words)-1])
	return fmt.Sprintf("%s:%d:%s:%s", prefix, sequence, strings.ToUpper(first), strings.ToUpper(last))
}

// isASCIISpace matches space, tab, newline, vertical tab, form feed and carriage return.
// Other Unicode spaces such as U+00A0 stay inside words.
func isASCIISpace(r rune) bool {
	return r == ' ' || (r >= '\t' && r <= '\r')
}

func isControlOrSpace(r rune) bool {
	return r <= ' '
}

func firstTwo(id string) string {
	if len(id) < 2 {
		return id
	}
	return id[:2]
}

func lettersOnly(word string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, word)
}
