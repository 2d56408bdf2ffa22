// Package jsontok splits a JSON document into a flat, document-ordered array
// of tokens without building a tree.
//
// Tokens are byte ranges into the caller's buffer, allocated from a
// fixed-size Pool the caller owns. A container token records how many
// immediate children it has, so callers walk the array and skip subtrees by
// arithmetic instead of recursion.
//
// Parsing is permissive by default: any run of printable ASCII outside a
// string is accepted as a primitive, with no number or literal grammar check.
// WithStrict restores the stricter rules.
//
// Passing a nil Pool (or calling Count) performs a dry run that only reports
// how many tokens the document needs:
//
//	n, err := jsontok.Count(data)
//	if err != nil {
//		return err
//	}
//	pool := jsontok.NewPool(n)
//	if _, err := jsontok.Parse(data, pool); err != nil {
//		return err
//	}
//	for _, tok := range pool.Tokens() {
//		fmt.Println(tok.Kind, string(tok.Bytes(data)))
//	}
package jsontok
