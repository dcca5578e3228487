// Package gen renders Go source derived from the identifier table.
package gen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"idtab/internal/diag"
	"idtab/internal/ident"
	"idtab/internal/token"
)

// Header is the first line of every generated file.
const Header = "Code generated by idtab gen; DO NOT EDIT."

// ErrUnknownToken is returned when a reserved literal names a token the
// grammar package does not declare.
var ErrUnknownToken = errors.New("reserved literal names an unknown token")

// Options controls ReservedCheck.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// TokenImport is the import path of the grammar token package.
	TokenImport string
}

// DefaultOptions generates internal/ident/grammar_check.go.
var DefaultOptions = Options{
	Package:     "ident",
	TokenImport: "idtab/internal/token",
}

// ReservedCheck renders a file that stops compiling when any reserved literal
// drifts from the grammar numbering: each literal indexes a one-element array
// with token-minus-literal, which is only in bounds while the two agree.
func ReservedCheck(opts Options, r diag.Reporter) ([]byte, error) {
	if opts.Package == "" || opts.TokenImport == "" {
		return nil, fmt.Errorf("gen: package and token import are required")
	}
	cr := &diag.CountingReporter{Next: r}

	body := []jen.Code{
		jen.Comment(`An "invalid array index" compiler error signifies that a reserved`),
		jen.Comment(`literal no longer matches the grammar's token numbering.`),
		jen.Comment(`Update reserved.go and re-run "idtab gen".`),
		jen.Var().Id("x").Index(jen.Lit(1)).Struct(),
	}
	for _, rt := range ident.Reserved() {
		k, ok := token.Lookup(rt.Grammar)
		if !ok {
			diag.ReportError(cr, diag.VerUnknownTokenName, diag.Pos{},
				fmt.Sprintf("%s refers to %s, which internal/token does not declare", rt.Const, rt.Grammar)).Emit()
			continue
		}
		if int(k) != int(rt.Value) {
			// still emitted: the compiler is the one that refuses it
			diag.ReportWarning(cr, diag.VerLiteralMismatch, diag.Pos{},
				fmt.Sprintf("%s = %d but token.%s = %d; the generated file will not compile", rt.Const, rt.Value, rt.Token, int(k))).Emit()
		}
		body = append(body, jen.Id("_").Op("=").Id("x").Index(
			jen.Int().Call(jen.Qual(opts.TokenImport, rt.Token)).
				Op("-").
				Int().Call(jen.Id(rt.Const)),
		))
	}
	if cr.Errors > 0 {
		return nil, fmt.Errorf("gen: %w (%d)", ErrUnknownToken, cr.Errors)
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment(Header)
	f.ImportAlias(opts.TokenImport, "token")
	f.Func().Id("_").Params().Block(body...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}
	return buf.Bytes(), nil
}
