// Package fixtures provides reusable test data generators shared across
// test suites, keeping length-sensitive test content out of individual
// test files.
package fixtures

import (
	"strings"
)

// BodyOptions configures the generated post body.
type BodyOptions struct {
	// Chars is the approximate rune count (target length, ±10% variance allowed)
	Chars int

	// Language selects the sentence bank ("english" or "japanese")
	Language string

	// WithHeadings interleaves markdown section headings into the body
	WithHeadings bool
}

// bodyHeadings are spread through generated bodies when WithHeadings is set.
var bodyHeadings = []string{
	"## Introduction",
	"## Recent Developments",
	"## What It Means",
	"## Conclusion",
}

var englishSentences = []string{
	"The pace of change in this field has accelerated sharply over the past year.",
	"Industry analysts point to three developments that set this cycle apart from earlier ones.",
	"Early adopters report measurable gains within the first quarter of rollout.",
	"The latest announcements build directly on groundwork laid by earlier research programs.",
	"Practical deployments are finally beginning to catch up with the headlines.",
	"Cost remains the deciding factor for most mid-sized organizations weighing adoption.",
	"Standards bodies have started to formalize practices the pioneers improvised.",
	"Supply constraints eased noticeably compared with the previous cycle.",
	"Open source implementations continue to narrow the gap with commercial offerings.",
	"Regulators in several markets have signaled closer scrutiny in the year ahead.",
	"The tooling surrounding the core technology has matured considerably.",
	"Skeptics note that benchmark results rarely translate directly into production wins.",
	"Partnerships between incumbents and startups are reshaping the vendor landscape.",
	"Long-term projections remain divided between cautious and optimistic camps.",
	"What happens next depends largely on how quickly costs continue to fall.",
}

var japaneseSentences = []string{
	"この分野の技術革新は過去一年で大きく加速しています。",
	"業界アナリストは今回のサイクルを特徴づける三つの動向を指摘しています。",
	"早期導入企業は導入初四半期から測定可能な効果を報告しています。",
	"最新の発表は先行研究の成果を土台にしています。",
	"実運用への展開がようやく話題に追いつきつつあります。",
	"多くの中堅企業にとってコストが導入判断の決め手となっています。",
	"標準化団体は先駆者が手探りで築いた手法の体系化を進めています。",
	"オープンソース実装は商用製品との差を縮め続けています。",
	"規制当局は複数の市場で監視強化の姿勢を示しています。",
	"今後の展開はコスト低下の速度に大きく左右されるでしょう。",
}

// GenerateBody produces a post body close to the requested rune count.
// Useful for length-target tests where handwritten fixtures would be
// unwieldy.
//
// Example:
//
//	body := fixtures.GenerateBody(fixtures.BodyOptions{
//	    Chars: 2000,
//	    Language: "english",
//	    WithHeadings: true,
//	})
func GenerateBody(opts BodyOptions) string {
	bank := englishSentences
	if opts.Language == "japanese" {
		bank = japaneseSentences
	}

	headingEvery := 0
	if opts.WithHeadings {
		headingEvery = opts.Chars / len(bodyHeadings)
	}

	var builder strings.Builder
	currentLength := 0
	sentenceIndex := 0
	headingIndex := 0

	for {
		// Headings land at 0, 1/4, 2/4, and 3/4 of the target, always below
		// the 90% floor, so they cannot push the body past the window.
		if opts.WithHeadings && headingIndex < len(bodyHeadings) && currentLength >= headingIndex*headingEvery {
			if currentLength > 0 {
				builder.WriteString("\n\n")
			}
			builder.WriteString(bodyHeadings[headingIndex])
			builder.WriteString("\n\n")
			headingIndex++
			currentLength = len([]rune(builder.String()))
		}

		sentence := bank[sentenceIndex%len(bank)]
		sentenceIndex++

		sentenceLength := len([]rune(sentence))
		if currentLength > 0 {
			sentenceLength++ // Account for space
		}

		// Past the 90% floor, stop before overshooting 110% of the target.
		if currentLength >= int(float64(opts.Chars)*0.9) {
			if currentLength+sentenceLength > int(float64(opts.Chars)*1.1) {
				break
			}
		}

		if currentLength > 0 && !strings.HasSuffix(builder.String(), "\n\n") {
			builder.WriteString(" ")
		}
		builder.WriteString(sentence)
		currentLength = len([]rune(builder.String()))

		if currentLength >= opts.Chars {
			break
		}
	}

	return strings.TrimSpace(builder.String())
}

// GenerateTargetBody produces an English body at the 1500-character length
// target the writer prompts for by default.
func GenerateTargetBody() string {
	return GenerateBody(BodyOptions{
		Chars:        1500,
		Language:     "english",
		WithHeadings: true,
	})
}

// GenerateCompletion wraps a generated body of approximately bodyChars
// runes in the three labeled sections a writer model is instructed to
// produce.
//
// Example:
//
//	raw := fixtures.GenerateCompletion("Quantum Leaps", "The year in qubits.", 1600)
func GenerateCompletion(title, meta string, bodyChars int) string {
	var builder strings.Builder
	builder.WriteString("TITLE: ")
	builder.WriteString(title)
	builder.WriteString("\nMETA: ")
	builder.WriteString(meta)
	builder.WriteString("\nBODY:\n")
	builder.WriteString(GenerateBody(BodyOptions{
		Chars:        bodyChars,
		Language:     "english",
		WithHeadings: true,
	}))
	builder.WriteString("\n")
	return builder.String()
}
