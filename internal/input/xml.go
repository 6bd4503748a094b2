package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

func decodeXML(r io.Reader) ([]any, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	return []any{element(root)}, nil
}

// element converts an XML element to {tag, attrs, text, children}; empty
// parts are left out.
func element(el *etree.Element) map[string]any {
	out := map[string]any{"tag": el.FullTag()}
	if len(el.Attr) > 0 {
		attrs := make(map[string]any, len(el.Attr))
		for _, a := range el.Attr {
			attrs[a.FullKey()] = a.Value
		}
		out["attrs"] = attrs
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		out["text"] = text
	}
	if kids := el.ChildElements(); len(kids) > 0 {
		children := make([]any, 0, len(kids))
		for _, k := range kids {
			children = append(children, element(k))
		}
		out["children"] = children
	}
	return out
}
