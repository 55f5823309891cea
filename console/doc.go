// Package console writes to the browser console under js/wasm and to the
// zerolog global logger elsewhere.
package console
