package menu

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const wantMenu = `
========================================
SIMPLE CALCULATOR
========================================
1. Addition (+)
2. Subtraction (-)
3. Multiplication (*)
4. Division (/)
5. Exit
========================================
`

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if diff := cmp.Diff(wantMenu, buf.String()); diff != "" {
		t.Errorf("menu mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Stateless(t *testing.T) {
	var buf bytes.Buffer

	for range 2 {
		if err := Render(&buf); err != nil {
			t.Fatalf("Render() returned error: %v", err)
		}
	}

	if got := buf.String(); got != wantMenu+wantMenu {
		t.Errorf("repeated Render() produced %q", got)
	}
}
