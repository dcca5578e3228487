//go:build !joke

package ident

// JokeEnabled reports whether the build carries the joke method names.
const JokeEnabled = false

const serialLastID = serialUScore + 1

var jokeNames []derivedName
