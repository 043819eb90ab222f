package output

import (
	"fmt"

	"github.com/arthur-debert/lydio/pkg/output/styles"
)

// Summary is the one-line report printed after a build. An empty dest means
// the stylesheet went to stdout.
func Summary(rules int, dest string) string {
	noun := "rules"
	if rules == 1 {
		noun = "rule"
	}
	count := styles.GetStyle("Count").Render(fmt.Sprintf("%d %s", rules, noun))
	if dest == "" {
		return styles.GetStyle("Success").Render("Built") + " " + count
	}
	return fmt.Sprintf("%s %s %s %s",
		styles.GetStyle("Success").Render("Wrote"),
		count,
		styles.GetStyle("Muted").Render("to"),
		styles.GetStyle("Path").Render(dest))
}

// ErrorLine formats an error for stderr
func ErrorLine(err error) string {
	return styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err))
}
