// Package token mirrors the grammar's token numbering.
// Invariants:
//   - Kinds are numbered in grammar declaration order starting at 258, the first
//     code a yacc/bison grammar hands out after the single-byte character tokens.
//   - Inserting, removing or reordering a Kind shifts every later code. The
//     reserved identifiers in internal/ident are asserted against these values
//     at compile time, so such a change breaks the build until the reserved
//     literals and the generated check are updated together.
//   - Single-character operators ('+', '<', '!', ...) are not Kinds: the
//     grammar passes them through as their byte value.
package token
