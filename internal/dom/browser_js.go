// SPDX-License-Identifier: MIT

//go:build js && wasm

package dom

import (
	"fmt"
	"strings"
	"syscall/js"
)

// Browser acquires the page's window.document
func Browser() Environment {
	return browserEnv{}
}

type browserEnv struct{}

func (browserEnv) Document() (Document, error) {
	window := js.Global().Get("window")
	if window.IsUndefined() || window.IsNull() {
		return nil, fmt.Errorf("%w: window is undefined", ErrEnvironment)
	}
	document := js.Global().Get("document")
	if document.IsUndefined() || document.IsNull() {
		return nil, fmt.Errorf("%w: document is undefined", ErrEnvironment)
	}
	return jsDocument{window: window, doc: document}, nil
}

type jsDocument struct {
	window js.Value
	doc    js.Value
}

func wrapJS(v js.Value) Element {
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	return jsElement{v: v}
}

func (d jsDocument) Head() Element { return wrapJS(d.doc.Get("head")) }
func (d jsDocument) Body() Element { return wrapJS(d.doc.Get("body")) }
func (d jsDocument) Root() Element { return wrapJS(d.doc.Get("documentElement")) }

func (d jsDocument) GetElementByID(id string) Element {
	return wrapJS(d.doc.Call("getElementById", id))
}

// QuerySelector returns nil for selectors the browser rejects
func (d jsDocument) QuerySelector(selector string) (el Element) {
	defer func() {
		if recover() != nil {
			el = nil
		}
	}()
	return wrapJS(d.doc.Call("querySelector", selector))
}

func (d jsDocument) CreateElement(tag string) Element {
	return wrapJS(d.doc.Call("createElement", tag))
}

func (d jsDocument) ComputedStyle(el Element) StyleDeclaration {
	e, ok := el.(jsElement)
	if !ok {
		return jsStyle{}
	}
	return jsStyle{v: d.window.Call("getComputedStyle", e.v)}
}

type jsElement struct {
	v js.Value
}

func (e jsElement) TagName() string       { return strings.ToLower(e.v.Get("tagName").String()) }
func (e jsElement) ID() string            { return e.v.Get("id").String() }
func (e jsElement) SetID(id string)       { e.v.Set("id", id) }
func (e jsElement) InnerHTML() string     { return e.v.Get("innerHTML").String() }
func (e jsElement) SetInnerHTML(s string) { e.v.Set("innerHTML", s) }
func (e jsElement) Style() InlineStyle    { return jsStyle{v: e.v.Get("style")} }

func (e jsElement) AppendChild(child Element) error {
	c, ok := child.(jsElement)
	if !ok {
		return fmt.Errorf("%w: child is not a browser element", ErrTypeMismatch)
	}
	e.v.Call("appendChild", c.v)
	return nil
}

type jsStyle struct {
	v js.Value
}

func (s jsStyle) GetPropertyValue(name string) string {
	if s.v.IsUndefined() || s.v.IsNull() {
		return ""
	}
	return strings.TrimSpace(s.v.Call("getPropertyValue", name).String())
}

func (s jsStyle) SetProperty(name, value string) {
	if s.v.IsUndefined() || s.v.IsNull() {
		return
	}
	if value == "" {
		s.v.Call("removeProperty", name)
		return
	}
	s.v.Call("setProperty", name, value)
}
