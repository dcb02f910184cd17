// Package palindrome_finder detects self-complementary substrings and
// inverted repeats with a bounded spacer and mismatch budget.
package palindrome_finder

import (
	"fmt"

	"biokit_go/tools/sequence"
)

// Palindrome is a substring equal to its own reverse complement.
type Palindrome struct {
	sequence.Match
}

// InvertedRepeat is a left arm that pairs with the reverse complement of
// a right arm, allowing a spacer and a few mismatches. Match spans both arms.
type InvertedRepeat struct {
	sequence.Match
	LeftArm    string
	RightArm   string
	ArmLength  int
	Spacer     int
	Mismatches int
}

// IsPerfectPalindrome reports whether s equals its reverse complement.
// Any N disqualifies s.
func IsPerfectPalindrome(s string) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		if s[i] == 'N' || s[i] != sequence.ComplementBase(s[n-1-i]) {
			return false
		}
	}
	return n > 0
}

func checkLengths(minLen, maxLen int) error {
	if minLen < 1 {
		return fmt.Errorf("%w: minimum length must be at least 1, got %d", sequence.ErrInvalidInput, minLen)
	}
	if minLen > maxLen {
		return fmt.Errorf("%w: minimum length %d exceeds maximum %d", sequence.ErrInvalidInput, minLen, maxLen)
	}
	return nil
}

// FindPalindromes reports every perfect palindrome of length minLen..maxLen,
// overlapping ones included, ordered by start then length.
func FindPalindromes(seq string, minLen, maxLen int) ([]Palindrome, error) {
	if err := checkLengths(minLen, maxLen); err != nil {
		return nil, err
	}
	n := len(seq)
	var out []Palindrome
	for i := 0; i < n; i++ {
		for l := minLen; l <= maxLen && i+l <= n; l++ {
			sub := seq[i : i+l]
			if IsPerfectPalindrome(sub) {
				out = append(out, Palindrome{sequence.Match{Start: i, End: i + l, Text: sub}})
			}
		}
	}
	return out, nil
}

// armMismatches compares left with the reverse complement of right without
// building it. A position where either base is N counts as a mismatch.
// Counting stops once limit is exceeded.
func armMismatches(left, right string, limit int) int {
	l := len(left)
	mm := 0
	for k := 0; k < l; k++ {
		a, b := left[k], right[l-1-k]
		if a == 'N' || b == 'N' || a != sequence.ComplementBase(b) {
			mm++
			if mm > limit {
				return mm
			}
		}
	}
	return mm
}

// FindInvertedRepeats scans every start, arm length in minLen..maxLen and
// spacer in 0..maxSpacer, reporting each candidate whose arms differ at no
// more than maxMismatches positions. Overlapping candidates are all kept.
// Order: start, arm length, spacer.
func FindInvertedRepeats(seq string, minLen, maxLen, maxSpacer, maxMismatches int) ([]InvertedRepeat, error) {
	if err := checkLengths(minLen, maxLen); err != nil {
		return nil, err
	}
	if maxSpacer < 0 || maxMismatches < 0 {
		return nil, fmt.Errorf("%w: spacer and mismatch limits must be non-negative", sequence.ErrInvalidInput)
	}

	n := len(seq)
	var out []InvertedRepeat
	for i := 0; i < n; i++ {
		for l := minLen; l <= maxLen; l++ {
			for spacer := 0; spacer <= maxSpacer; spacer++ {
				rightStart := i + l + spacer
				rightEnd := rightStart + l
				if rightEnd > n {
					break // longer spacers only move further right
				}
				left := seq[i : i+l]
				right := seq[rightStart:rightEnd]
				mm := armMismatches(left, right, maxMismatches)
				if mm > maxMismatches {
					continue
				}
				out = append(out, InvertedRepeat{
					Match:      sequence.Match{Start: i, End: rightEnd, Text: seq[i:rightEnd]},
					LeftArm:    left,
					RightArm:   right,
					ArmLength:  l,
					Spacer:     spacer,
					Mismatches: mm,
				})
			}
		}
	}
	return out, nil
}
