//go:build joke

package ident

// JokeEnabled reports whether the build carries the joke method names.
const JokeEnabled = true

const (
	serialBitblt = serialUScore + 1 + iota
	serialAnswer
	serialLastID
)

const (
	IDBitblt = ID(serialBitblt)<<ScopeShift | ID(Local)
	IDAnswer = ID(serialAnswer)<<ScopeShift | ID(Local)
)

var jokeNames = []derivedName{
	{"IDBitblt", "bitblt", Local, IDBitblt},
	{"IDAnswer", "the_answer_to_life_the_universe_and_everything", Local, IDAnswer},
}
