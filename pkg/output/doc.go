// Package output renders built stylesheets for people and files.
//
// Plain text is the stylesheet exactly as css.Collection.CSS returns it.
// Terminal output wraps it in a markdown code fence and renders it with
// glamour for syntax highlighting. Tree prints the rule hierarchy with pterm,
// Summary produces the one-line build report, and WriteFile writes the result
// through a synthfs pipeline.
package output
