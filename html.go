package yves

import (
	"html"
	"strings"
)

var htmlEscapers = map[HTMLQuotes]*strings.Replacer{
	QuoteNone:   strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;"),
	QuoteDouble: strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;"),
	QuoteBoth:   strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#039;"),
}

func escapeHTML(s string, q HTMLQuotes) string {
	r, ok := htmlEscapers[q]
	if !ok {
		r = htmlEscapers[QuoteDouble]
	}
	return r.Replace(s)
}

// wrapPre turns HTML output into a standalone fragment on a black
// background, tinted with the global style when there is one.
func wrapPre(body string, o *Options) string {
	style := "padding:8px;background-color: black;"
	if o.Styles != nil {
		if all := o.Styles[RoleAll]; all != "" {
			style += "color:" + html.EscapeString(all) + ";"
		}
	}
	return `<pre class="yves" style="` + style + `">` + body + `</pre>`
}
