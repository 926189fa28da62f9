package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	MaxTitleLen   = 256     // runes
	MaxContentLen = 1 << 20 // bytes
	MaxIconLen    = 64      // runes, an icon is an emoji or a short token
)

// An ArticlePatch is the decoded body of an edit request.
// Nil fields were absent from the payload and keep their stored value.
type ArticlePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Icon    *string `json:"icon"`
}

// DecodePatch parses and validates an edit payload.
// Unknown fields and non-string values are rejected, not ignored.
func DecodePatch(body []byte) (*ArticlePatch, error) {

	var patch = &ArticlePatch{}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(patch); err != nil {
		return nil, &ValidationError{Field: "body", Reason: err.Error()}
	}
	if dec.More() {
		return nil, &ValidationError{Field: "body", Reason: "trailing data"}
	}

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	return patch, nil
}

func (p *ArticlePatch) Validate() error {
	if p.Title != nil && utf8.RuneCountInString(*p.Title) > MaxTitleLen {
		return &ValidationError{Field: "title", Reason: fmt.Sprintf("longer than %d runes", MaxTitleLen)}
	}
	if p.Content != nil && len(*p.Content) > MaxContentLen {
		return &ValidationError{Field: "content", Reason: fmt.Sprintf("longer than %d bytes", MaxContentLen)}
	}
	if p.Icon != nil && utf8.RuneCountInString(*p.Icon) > MaxIconLen {
		return &ValidationError{Field: "icon", Reason: fmt.Sprintf("longer than %d runes", MaxIconLen)}
	}
	return nil
}

// Apply merges the patch onto the stored values and
// returns the three fields which the store shall write.
func (p *ArticlePatch) Apply(a *Article) (title, content, icon string) {
	title, content, icon = a.Title, a.Content, a.Icon
	if p.Title != nil {
		title = *p.Title
	}
	if p.Content != nil {
		content = *p.Content
	}
	if p.Icon != nil {
		icon = *p.Icon
	}
	return
}
