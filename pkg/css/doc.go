// Package css is an in-memory object model for stylesheets with
// deterministic serialization to stylesheet text.
//
// A stylesheet is built top-down through fluent mutators and serialized once
// at the end:
//
//	sheet := css.NewCollection()
//	sheet.AddRule("body").
//		Prop("color", "var(--text)").
//		Prop("background", "var(--background)")
//	sheet.AddRule(".l-clamp-800").
//		Prop("margin", "0 auto").
//		Prop("width", "800px")
//	fmt.Println(sheet.CSS())
//
// The return type of each builder method is part of its contract. Methods that
// configure the receiver (Prop, AddSelector, Apply, Important) return the
// receiver. Methods that create a node return the new node: AddDeclaration
// returns the Declaration, Nest returns the child Rule, and
// Collection.AddRule returns the Rule.
//
// Nested rules are emitted flat, directly after the parent's closing brace
// and without extra indentation. The output is plain CSS text; selectors and
// values are never parsed, validated or escaped.
//
// Nothing in this package synchronizes access. A tree must be owned by a
// single builder at a time.
package css
