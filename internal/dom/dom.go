// SPDX-License-Identifier: MIT

// Package dom abstracts the host document the theme engine writes into.
//
// Callers obtain a Document through an Environment instead of reaching for
// globals: in a browser build Browser() acquires window.document, on the
// server an *HTMLDocument parsed from markup stands in for it.
package dom

import "errors"

var (
	// ErrEnvironment means no usable document is available (no window, document, head or body)
	ErrEnvironment = errors.New("document environment not available")
	// ErrLookup means a selector matched no element
	ErrLookup = errors.New("element not found")
	// ErrTypeMismatch means an element was found but is not of the expected kind
	ErrTypeMismatch = errors.New("element has unexpected type")
)

// Environment is a scoped handle on a host document
type Environment interface {
	Document() (Document, error)
}

// Document is the subset of the DOM the engine needs
type Document interface {
	// Head, Body and Root return nil when the document lacks the element.
	Head() Element
	Body() Element
	Root() Element

	GetElementByID(id string) Element
	// QuerySelector returns the first matching element in tree order, or nil.
	QuerySelector(selector string) Element
	CreateElement(tag string) Element
	ComputedStyle(el Element) StyleDeclaration
}

// Element is a single node of the document
type Element interface {
	TagName() string // lower case, e.g. "style"
	ID() string
	SetID(id string)
	InnerHTML() string
	SetInnerHTML(markup string)
	AppendChild(child Element) error
	Style() InlineStyle
}

// StyleDeclaration reads resolved property values
type StyleDeclaration interface {
	// GetPropertyValue returns "" for unset properties.
	GetPropertyValue(name string) string
}

// InlineStyle is an element's own style attribute
type InlineStyle interface {
	StyleDeclaration
	// SetProperty sets a property, or removes it when value is empty.
	SetProperty(name, value string)
}

// Static wraps an existing document as an Environment. A nil document yields ErrEnvironment.
func Static(doc Document) Environment {
	return staticEnv{doc: doc}
}

type staticEnv struct {
	doc Document
}

func (e staticEnv) Document() (Document, error) {
	if e.doc == nil {
		return nil, ErrEnvironment
	}
	return e.doc, nil
}

// Acquire resolves the document of env, treating a nil env as a missing environment
func Acquire(env Environment) (Document, error) {
	if env == nil {
		return nil, ErrEnvironment
	}
	doc, err := env.Document()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrEnvironment
	}
	return doc, nil
}
