//go:build !(js || wasm)

package console

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Log writes args at info level.
func Log(args ...any) {
	log.Info().Msg(join(args))
}

// Warn writes args at warn level.
func Warn(args ...any) {
	log.Warn().Msg(join(args))
}

// Error writes args at error level.
func Error(args ...any) {
	log.Error().Msg(join(args))
}

// join separates args with spaces, the way the browser console prints them.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
