// Package entity defines the domain types and error kinds for blog post
// generation.
package entity

import (
	"errors"
	"strings"
)

// Post is a fully generated blog post. All three fields are non-empty once
// a post has been produced; the response parser enforces that.
type Post struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	PostContent     string `json:"post_content"`
}

// Validate checks that all three post fields carry content.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("post title must not be empty")
	}
	if strings.TrimSpace(p.MetaDescription) == "" {
		return errors.New("post meta description must not be empty")
	}
	if strings.TrimSpace(p.PostContent) == "" {
		return errors.New("post content must not be empty")
	}
	return nil
}
