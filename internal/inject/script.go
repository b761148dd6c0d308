// SPDX-License-Identifier: MIT
package inject

import (
	"fmt"
	"text/template"

	"github.com/thatcatcamp/pte/internal/themes"
)

// ScriptID identifies the bootstrap script element produced by ScriptTag
const ScriptID = "pte-bootstrap"

// GenerateScript returns a single-line, self-executing script that does
// what Inject does: find the style element by id or create it in the head,
// refuse a non-style element, and overwrite its content with the theme rule.
//
// String literals are escaped for JavaScript and HTML, so the result can be
// placed inside a <script> element as is.
func GenerateScript(theme *themes.Theme, opts Options) string {
	opts = opts.withDefaults()
	id := jsString(opts.ID)
	css := jsString(CSS(theme, opts))

	return "(function(){" +
		"var d=document,s=d.getElementById(" + id + ");" +
		"if(s&&String(s.tagName).toLowerCase()!==\"style\"){throw new TypeError(\"#\"+" + id + "+\" is not a style element\");}" +
		"if(!s){s=d.createElement(\"style\");s.id=" + id + ";d.head.appendChild(s);}" +
		"s.innerHTML=" + css + ";" +
		"})();"
}

// ScriptTag wraps GenerateScript in a script element for server-rendered markup
func ScriptTag(theme *themes.Theme, opts Options) string {
	return fmt.Sprintf(`<script id="%s" type="text/javascript">%s</script>`, ScriptID, GenerateScript(theme, opts))
}

func jsString(s string) string {
	return `"` + template.JSEscapeString(s) + `"`
}
