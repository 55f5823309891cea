//go:build js || wasm
// +build js wasm

package main

import (
	"syscall/js"

	"github.com/vcrobe/nojs-uidl/config"
	"github.com/vcrobe/nojs-uidl/console"
	"github.com/vcrobe/nojs-uidl/dom"
	"github.com/vcrobe/nojs-uidl/label"
	"github.com/vcrobe/nojs-uidl/logging"
	"github.com/vcrobe/nojs-uidl/runtime"
	"github.com/vcrobe/nojs-uidl/uidl"
)

func main() {
	cfg := config.Default()
	logging.SetupLogger(cfg.Log.Verbosity)

	policy, err := runtime.ParsePolicy(cfg.Update.Policy)
	if err != nil {
		panic("Error reading update policy: " + err.Error())
	}

	// 1. Find the mount element the label draws into
	mount := js.Global().Get("document").Call("querySelector", cfg.Mount.Selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", cfg.Mount.Selector)
		return
	}
	mount.Get("classList").Call("add", cfg.Mount.Class)

	// 2. Create the label and register it under the mount element's id
	lbl := label.New(dom.NewJSElement(mount),
		label.WithLogger(logging.GetLogger("label")),
		label.WithImagesLoaded(func() {
			mount.Call("dispatchEvent", js.Global().Get("CustomEvent").New("nojs:imagesloaded"))
		}),
	)
	dispatcher := runtime.NewDispatcher(policy, logging.GetLogger("dispatcher"))
	id := mount.Get("id").String()
	dispatcher.Register(id, lbl)

	// 3. Let page scripts push update records in their JSON wire form.
	// The record's id attribute must match the mount element's id.
	apply := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return "missing update record"
		}
		u, err := uidl.ParseJSON([]byte(args[0].String()))
		if err != nil {
			console.Error("Bad update record:", err.Error())
			return err.Error()
		}
		if _, err := dispatcher.Update(u); err != nil {
			console.Error("Update failed:", err.Error())
			return err.Error()
		}
		return nil
	})
	js.Global().Set("nojsApplyUIDL", apply)

	// Keep the Go program running
	select {}
}
