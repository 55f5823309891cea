//go:build js || wasm

package console

import (
	"fmt"
	"syscall/js"
)

func Log(args ...any) {
	call("log", args)
}

func Warn(args ...any) {
	call("warn", args)
}

func Error(args ...any) {
	call("error", args)
}

// call stringifies args first; js.ValueOf rejects most Go types.
func call(method string, args []any) {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = fmt.Sprint(a)
	}
	js.Global().Get("console").Call(method, values...)
}
