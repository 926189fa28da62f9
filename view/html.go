package view

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

func isHeading(tagName string) bool {
	switch tagName {
	case "h1", "h2", "h3", "h4":
		return true
	}
	return false
}

// Heading returns the text of the first heading (h1, h2, h3, h4), if any is found within the first 4000 bytes.
func Heading(input io.Reader) string {

	tokenizer := html.NewTokenizerFragment(input, "body")
	tokenizer.SetMaxBuf(4096) // roughly the maximum number of bytes tokenized

	var heading string // name of the open heading tag, if any
	var text = &bytes.Buffer{}
	var offset = 0

	for {

		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}

		switch tt {
		case html.StartTagToken:
			if heading == "" {
				tagNameBytes, _ := tokenizer.TagName()
				if tagName := string(tagNameBytes); isHeading(tagName) {
					heading = tagName
				}
			}
		case html.TextToken:
			if heading != "" {
				text.Write(tokenizer.Text())
			}
		case html.EndTagToken:
			tagNameBytes, _ := tokenizer.TagName()
			if heading != "" && string(tagNameBytes) == heading {
				return strings.TrimSpace(text.String())
			}
		}

		offset += len(tokenizer.Raw())
		if offset > 4000 && heading == "" {
			break
		}
	}

	return ""
}
