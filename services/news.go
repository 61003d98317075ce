package services

import (
	"regexp"
	"strings"
)

type NewsKind int

const (
	NewsParagraph NewsKind = iota
	NewsHeading1
	NewsHeading2
	NewsHeading3
	NewsBullet
	NewsNumbered
	NewsBreak
)

type NewsBlock struct {
	Kind NewsKind
	Text string
}

var numberedRe = regexp.MustCompile(`^\d+\.\s`)

// ParseNews splits the plain text news feed into display blocks. Lines
// starting with "#", "##" and "###" are headings, "- ", "• " and "* " are
// bullets, "1. " style lines are numbered items and blank lines are breaks.
func ParseNews(text string) []NewsBlock {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var blocks []NewsBlock
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			blocks = append(blocks, NewsBlock{Kind: NewsBreak})
		case hasAnyPrefix(line, "- ", "• ", "* "):
			_, item, _ := strings.Cut(line, " ")
			blocks = append(blocks, NewsBlock{Kind: NewsBullet, Text: strings.TrimSpace(item)})
		case numberedRe.MatchString(line):
			item := numberedRe.ReplaceAllString(line, "")
			blocks = append(blocks, NewsBlock{Kind: NewsNumbered, Text: strings.TrimSpace(item)})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, NewsBlock{Kind: NewsHeading3, Text: line[4:]})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, NewsBlock{Kind: NewsHeading2, Text: line[3:]})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, NewsBlock{Kind: NewsHeading1, Text: line[2:]})
		default:
			blocks = append(blocks, NewsBlock{Kind: NewsParagraph, Text: line})
		}
	}
	return blocks
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
