package domain

import (
	"strconv"
	"strings"
)

// LanguageLevel is a Java language compatibility level applied to all compiled sources.
type LanguageLevel int

const (
	// LanguageLevelUnknown is the zero value and never valid in a descriptor.
	LanguageLevelUnknown LanguageLevel = 0
	// LanguageLevel8 is Java 1.8.
	LanguageLevel8 LanguageLevel = 8
	// LanguageLevel11 is Java 11.
	LanguageLevel11 LanguageLevel = 11
	// LanguageLevel17 is Java 17.
	LanguageLevel17 LanguageLevel = 17
	// LanguageLevel21 is Java 21.
	LanguageLevel21 LanguageLevel = 21
)

// ParseLanguageLevel parses the spellings used by Gradle build scripts:
// "11", "1.8", "VERSION_11", "VERSION_1_8" and "JavaVersion.VERSION_17".
// It reports false for anything that is not a recognized level.
func ParseLanguageLevel(raw string) (LanguageLevel, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "JavaVersion.")
	s = strings.TrimPrefix(s, "VERSION_")
	s = strings.ReplaceAll(s, "_", ".")
	s = strings.TrimPrefix(s, "1.")

	n, err := strconv.Atoi(s)
	if err != nil {
		return LanguageLevelUnknown, false
	}

	level := LanguageLevel(n)
	if !level.Valid() {
		return LanguageLevelUnknown, false
	}
	return level, true
}

// Valid reports whether l is a recognized level.
func (l LanguageLevel) Valid() bool {
	switch l {
	case LanguageLevel8, LanguageLevel11, LanguageLevel17, LanguageLevel21:
		return true
	default:
		return false
	}
}

// String returns the level as written in a JVM target, e.g. "1.8" or "17".
func (l LanguageLevel) String() string {
	switch {
	case l == LanguageLevel8:
		return "1.8"
	case l.Valid():
		return strconv.Itoa(int(l))
	default:
		return "unknown"
	}
}
