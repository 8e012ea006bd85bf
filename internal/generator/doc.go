// Package generator produces random passwords.
//
// Passwords are drawn uniformly from a fixed 52-letter alphabet (ASCII
// upper and lower case, no digits or symbols). When no length is given,
// the length itself is drawn uniformly from [MinLength, MaxLength).
//
// Randomness comes from crypto/rand unless a Source is supplied.
package generator
