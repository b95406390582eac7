package jsonschema4

import (
	"fmt"
	"os"
)

// fwriteTrace is the single place stderr is written to. The core has no
// structured logger (spec §1 scopes transport/IO concerns out); this is
// intentionally the smallest possible ambient logging surface, gated
// entirely by Config.Debug.
func fwriteTrace(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jsonschema4: "+format+"\n", args...)
}

func sprintfWarn(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
