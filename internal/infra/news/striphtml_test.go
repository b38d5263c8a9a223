package news

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "empty fragment",
			fragment: "",
			want:     "",
		},
		{
			name:     "plain text passes through",
			fragment: "no markup here",
			want:     "no markup here",
		},
		{
			name:     "anchor text extracted",
			fragment: `<a href="https://example.com">linked headline</a>`,
			want:     "linked headline",
		},
		{
			name:     "nested markup flattened",
			fragment: `<p><b>Bold</b> and <i>italic</i> text</p>`,
			want:     "Bold and italic text",
		},
		{
			name:     "surrounding whitespace trimmed",
			fragment: "  <span>padded</span>  ",
			want:     "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripHTML(tt.fragment); got != tt.want {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}
