// SPDX-License-Identifier: MIT

//go:build js && wasm

// Command ptewasm exposes the theme engine to page scripts as a global "pte"
// object when compiled with GOOS=js GOARCH=wasm.
package main

import (
	"syscall/js"

	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/inject"
	"github.com/thatcatcamp/pte/internal/themes"
)

func main() {
	var kit *inject.Kit

	result := func(value any, err error) any {
		if err != nil {
			return map[string]any{"error": err.Error()}
		}
		return map[string]any{"value": value}
	}

	api := map[string]any{
		// createTheme(themeJSON, {prefix, selector, id})
		"createTheme": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) < 1 {
				return result(nil, themes.ErrImport)
			}
			theme, err := themes.Decode([]byte(args[0].String()), themes.FormatJSON)
			if err != nil {
				return result(nil, err)
			}
			var opts inject.Options
			if len(args) > 1 && args[1].Type() == js.TypeObject {
				opts = inject.Options{
					Prefix:   optString(args[1], "prefix"),
					Selector: optString(args[1], "selector"),
					ID:       optString(args[1], "id"),
				}
			}
			kit = inject.NewKit(theme, opts)
			return result(true, nil)
		}),
		"inject": js.FuncOf(func(this js.Value, args []js.Value) any {
			return result(true, current(&kit).Inject(dom.Browser()))
		}),
		"update": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) < 1 {
				return result(nil, themes.ErrImport)
			}
			partial, err := themes.Decode([]byte(args[0].String()), themes.FormatJSON)
			if err != nil {
				return result(nil, err)
			}
			return result(true, current(&kit).Update(dom.Browser(), partial))
		}),
		"get": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) < 1 {
				return result(nil, themes.ErrUnknownPath)
			}
			selector := ""
			if len(args) > 1 && args[1].Type() == js.TypeString {
				selector = args[1].String()
			}
			return result(current(&kit).Get(dom.Browser(), args[0].String(), selector))
		}),
		"var": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) < 1 {
				return result(nil, themes.ErrUnknownPath)
			}
			return result(current(&kit).Var(args[0].String()))
		}),
	}

	js.Global().Set("pte", js.ValueOf(api))
	select {}
}

// current returns the bound kit, binding the default theme on first use
func current(kit **inject.Kit) *inject.Kit {
	if *kit == nil {
		*kit = inject.NewKit(nil, inject.Options{})
	}
	return *kit
}

func optString(obj js.Value, key string) string {
	v := obj.Get(key)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
