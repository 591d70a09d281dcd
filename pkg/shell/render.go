package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/huynhanx03/go-pieces/pkg/inventory"
	"github.com/huynhanx03/go-pieces/pkg/piece"
)

const emptyMarker = "[EMPTY]"

// RenderState writes both containers: the queue front to back, the stack top to base.
func RenderState(w io.Writer, snap inventory.Snapshot) {
	fmt.Fprint(w, "\n--- Current state ---\n\n")
	fmt.Fprintf(w, "Queue (front -> back): %s\n", joinPieces(snap.Queue))
	fmt.Fprintf(w, "Reserve (top -> base): %s\n", joinPieces(snap.Stack))
	fmt.Fprint(w, "\n---------------------\n")
}

func joinPieces(ps []piece.Piece) string {
	if len(ps) == 0 {
		return emptyMarker
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// RenderMenu writes the option table.
func RenderMenu(w io.Writer, stackCap int) {
	fmt.Fprint(w, "\nOptions:\n")
	fmt.Fprint(w, "Code | Action\n")
	fmt.Fprint(w, "-----|----------------------------------------------\n")
	for _, a := range inventory.Actions() {
		fmt.Fprintf(w, "  %d  | %s\n", int(a), describe(a, stackCap))
	}
	fmt.Fprintf(w, "  %d  | Quit\n", quitCode)
	fmt.Fprint(w, "----------------------------------------------------\n")
	fmt.Fprint(w, "Choice: ")
}

func describe(a inventory.Action, stackCap int) string {
	switch a {
	case inventory.ActionPlay:
		return "Play the front piece"
	case inventory.ActionReserve:
		return "Reserve the front piece (queue -> stack)"
	case inventory.ActionUse:
		return "Use the reserved piece on top"
	case inventory.ActionSwapOne:
		return "Swap the queue front with the stack top"
	case inventory.ActionSwapBlock:
		return fmt.Sprintf("Swap the first %d queue pieces with the %d reserved pieces", stackCap, stackCap)
	default:
		return a.String()
	}
}

// RenderSummary writes the per-action counters collected during the session.
func RenderSummary(w io.Writer, st inventory.Stats) {
	ok, failed := 0, 0
	for _, n := range st.Succeeded {
		ok += n
	}
	for _, n := range st.Failed {
		failed += n
	}
	fmt.Fprintf(w, "\nSession summary: %d actions (%d applied, %d rejected)\n", ok+failed, ok, failed)
	for _, a := range inventory.Actions() {
		if st.Succeeded[a]+st.Failed[a] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-10s %d applied, %d rejected\n", a, st.Succeeded[a], st.Failed[a])
	}
}
