package writer_test

import (
	"testing"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/infra/writer"
	"blogsmith/internal/utils/text"
	"blogsmith/tests/fixtures"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePost(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        *entity.Post
		wantSection string
	}{
		{
			name: "canonical format",
			raw: "TITLE: The Rise of Quantum Computing\n" +
				"META: Quantum computing is moving from labs to industry. Learn what changed this year.\n" +
				"BODY:\n" +
				"Quantum computing has crossed a threshold.\n\n" +
				"The hardware finally works.",
			want: &entity.Post{
				Title:           "The Rise of Quantum Computing",
				MetaDescription: "Quantum computing is moving from labs to industry. Learn what changed this year.",
				PostContent:     "Quantum computing has crossed a threshold.\n\nThe hardware finally works.",
			},
		},
		{
			name: "lowercase labels",
			raw:  "title: Small Title\nmeta: Short meta.\nbody:\nThe body text.",
			want: &entity.Post{
				Title:           "Small Title",
				MetaDescription: "Short meta.",
				PostContent:     "The body text.",
			},
		},
		{
			name: "bold labels with colon inside markers",
			raw:  "**TITLE:** Bold Title\n**META:** Bold meta.\n**BODY:**\nBold body.",
			want: &entity.Post{
				Title:           "Bold Title",
				MetaDescription: "Bold meta.",
				PostContent:     "Bold body.",
			},
		},
		{
			name: "bold labels with colon outside markers",
			raw:  "**TITLE**: Bold Title\n**META**: Bold meta.\n**BODY**:\nBold body.",
			want: &entity.Post{
				Title:           "Bold Title",
				MetaDescription: "Bold meta.",
				PostContent:     "Bold body.",
			},
		},
		{
			name: "markdown heading labels",
			raw:  "## TITLE: Heading Title\n### META: Heading meta.\n## BODY:\nHeading body.",
			want: &entity.Post{
				Title:           "Heading Title",
				MetaDescription: "Heading meta.",
				PostContent:     "Heading body.",
			},
		},
		{
			name: "whole response wrapped in code fence",
			raw:  "```\nTITLE: Fenced Title\nMETA: Fenced meta.\nBODY:\nFenced body.\n```",
			want: &entity.Post{
				Title:           "Fenced Title",
				MetaDescription: "Fenced meta.",
				PostContent:     "Fenced body.",
			},
		},
		{
			name: "preamble before first label ignored",
			raw: "Sure! Here is the post you asked for:\n\n" +
				"TITLE: After Preamble\nMETA: Meta text.\nBODY:\nBody text.",
			want: &entity.Post{
				Title:           "After Preamble",
				MetaDescription: "Meta text.",
				PostContent:     "Body text.",
			},
		},
		{
			name: "meta spanning two lines",
			raw:  "TITLE: Two Line Meta\nMETA: First half of the meta\ncontinues on a second line.\nBODY:\nBody.",
			want: &entity.Post{
				Title:           "Two Line Meta",
				MetaDescription: "First half of the meta\ncontinues on a second line.",
				PostContent:     "Body.",
			},
		},
		{
			name: "markdown inside body preserved",
			raw: "TITLE: Markdown Body\nMETA: Meta.\nBODY:\n" +
				"## Introduction\n\nSome text with **bold** words.\n\n## Conclusion\n\nClosing text.",
			want: &entity.Post{
				Title:           "Markdown Body",
				MetaDescription: "Meta.",
				PostContent:     "## Introduction\n\nSome text with **bold** words.\n\n## Conclusion\n\nClosing text.",
			},
		},
		{
			name: "crlf line endings",
			raw:  "TITLE: CRLF Title\r\nMETA: CRLF meta.\r\nBODY:\r\nCRLF body.",
			want: &entity.Post{
				Title:           "CRLF Title",
				MetaDescription: "CRLF meta.",
				PostContent:     "CRLF body.",
			},
		},
		{
			name: "title on line after label",
			raw:  "TITLE:\nDelayed Title\nMETA: Meta.\nBODY:\nBody.",
			want: &entity.Post{
				Title:           "Delayed Title",
				MetaDescription: "Meta.",
				PostContent:     "Body.",
			},
		},
		{
			name:        "missing title",
			raw:         "META: Meta only.\nBODY:\nBody only.",
			wantSection: "title",
		},
		{
			name:        "missing meta",
			raw:         "TITLE: No Meta\nBODY:\nBody text.",
			wantSection: "meta description",
		},
		{
			name:        "missing body",
			raw:         "TITLE: No Body\nMETA: Meta text.",
			wantSection: "body",
		},
		{
			name:        "body label present but empty",
			raw:         "TITLE: Empty Body\nMETA: Meta text.\nBODY:\n   \n",
			wantSection: "body",
		},
		{
			name:        "label without colon is not a label",
			raw:         "TITLE\nJust a line\nMETA: Meta.\nBODY:\nBody.",
			wantSection: "title",
		},
		{
			name:        "empty response",
			raw:         "",
			wantSection: "title",
		},
		{
			name:        "freeform prose with no labels",
			raw:         "Here is a lovely essay about your topic with no structure at all.",
			wantSection: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := writer.ParsePost(tt.raw)

			if tt.wantSection != "" {
				var parseErr *entity.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.wantSection, parseErr.Section)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePost() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePost_RealisticCompletion(t *testing.T) {
	raw := "TITLE: Edge AI in 2026: Why the Data Center Is Losing Its Monopoly\n" +
		"META: Edge AI is reshaping where inference happens. Here is what the shift means for latency, privacy, and the chips running it all in 2026.\n" +
		"BODY:\n" +
		"## Introduction\n\n" +
		"For a decade, artificial intelligence lived in the data center. That era is ending.\n\n" +
		"## The Hardware Catches Up\n\n" +
		"New accelerator designs put meaningful inference budgets in devices that fit in a pocket. " +
		"The recent coverage of low-power NPU launches shows vendors racing to claim this ground.\n\n" +
		"## What It Means for Builders\n\n" +
		"Latency-sensitive products no longer round-trip to a region. Privacy-sensitive ones never leave the device.\n\n" +
		"## Conclusion\n\n" +
		"The center of gravity is moving to the edge, and the tooling is finally ready."

	post, err := writer.ParsePost(raw)

	require.NoError(t, err)
	assert.Equal(t, "Edge AI in 2026: Why the Data Center Is Losing Its Monopoly", post.Title)
	assert.Contains(t, post.MetaDescription, "latency, privacy")
	assert.True(t, len(post.PostContent) > 400)
	assert.Contains(t, post.PostContent, "## Introduction")
	assert.Contains(t, post.PostContent, "## Conclusion")
}

func TestParsePost_GeneratedLongCompletion(t *testing.T) {
	raw := fixtures.GenerateCompletion(
		"Solid State Batteries: What Changed This Year",
		"A look at recent solid state battery breakthroughs.",
		1600,
	)

	post, err := writer.ParsePost(raw)

	require.NoError(t, err)
	assert.Equal(t, "Solid State Batteries: What Changed This Year", post.Title)
	assert.GreaterOrEqual(t, text.CountRunes(post.PostContent), 1440, "generated body stays near its target")
	assert.Contains(t, post.PostContent, "## Introduction")
	assert.Contains(t, post.PostContent, "## Conclusion")
}
