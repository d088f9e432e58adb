// Package menu renders the calculator's operation menu.
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/sivchari/gocalc/internal/arith"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Title is the heading printed between separators.
	Title = "SIMPLE CALCULATOR"
	// ExitSelector is the menu choice that ends the session.
	ExitSelector = 5

	separatorWidth = 40
)

// Render writes the menu to w. The block starts with an empty line so
// that it stands apart from the previous result.
func Render(w io.Writer) error {
	_, err := io.WriteString(w, Text())

	return err
}

// Text returns the menu block.
func Text() string {
	separator := strings.Repeat("=", separatorWidth)
	title := cases.Title(language.English)

	// strings.Builder writes never fail.
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(separator + "\n")
	b.WriteString(Title + "\n")
	b.WriteString(separator + "\n")

	for _, op := range arith.Operations() {
		fmt.Fprintf(&b, "%d. %s (%s)\n", int(op), title.String(op.Name()), op.Symbol())
	}

	fmt.Fprintf(&b, "%d. Exit\n", ExitSelector)
	b.WriteString(separator + "\n")

	return b.String()
}
