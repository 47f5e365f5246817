package menu

import (
	"regexp"
	"strings"
)

// RssItem is one <item> of the cafeteria feed. Missing tags come back as
// empty strings, never as errors; the weekday mapper degrades per day.
type RssItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     string `json:"pub_date,omitempty"`
}

var (
	itemBlockRe = regexp.MustCompile(`(?is)<item>.*?</item>`)
	titleRe     = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	descRe      = regexp.MustCompile(`(?is)<description>(.*?)</description>`)
	pubDateRe   = regexp.MustCompile(`(?is)<pubDate>(.*?)</pubDate>`)
	cdataRe     = regexp.MustCompile(`(?s)^<!\[CDATA\[(.*)\]\]>$`)
)

// The feeds only ever use this small entity set.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

func stripCdata(s string) string {
	return cdataRe.ReplaceAllString(s, "$1")
}

func extractTag(block string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return entityReplacer.Replace(stripCdata(strings.TrimSpace(m[1])))
}

// ParseFeedItems extracts every <item> block from the feed XML.
func ParseFeedItems(xml string) []RssItem {
	blocks := itemBlockRe.FindAllString(xml, -1)
	items := make([]RssItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, RssItem{
			Title:       extractTag(block, titleRe),
			Description: extractTag(block, descRe),
			PubDate:     extractTag(block, pubDateRe),
		})
	}
	return items
}
