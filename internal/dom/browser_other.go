// SPDX-License-Identifier: MIT

//go:build !(js && wasm)

package dom

import "fmt"

// Browser acquires the page's window.document. Outside a js/wasm build
// there is no browser, so the returned environment always fails.
func Browser() Environment {
	return browserEnv{}
}

type browserEnv struct{}

func (browserEnv) Document() (Document, error) {
	return nil, fmt.Errorf("%w: window and document are only defined in a browser build", ErrEnvironment)
}
