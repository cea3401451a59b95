package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rankcheck"
)

// ResultSelector matches result anchors on the basic (no-JavaScript) Google
// result page. The container's class attribute must equal the signature exactly.
const ResultSelector = `div[class="egMi0 kCrYT"] a[href]`

// Ensure ResultExtractor implements rankcheck.ResultExtractor at compile time.
var _ rankcheck.ResultExtractor = (*ResultExtractor)(nil)

// ResultExtractor extracts organic result links from a search result page.
type ResultExtractor struct {
	selector string
}

// NewResultExtractor creates a ResultExtractor using ResultSelector.
func NewResultExtractor() *ResultExtractor {
	return &ResultExtractor{selector: ResultSelector}
}

// ExtractLinks returns the href of every result anchor in document order.
// Hrefs are returned as they appear in the page, without resolution.
func (e *ResultExtractor) ExtractLinks(html string) ([]rankcheck.ResultLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rankcheck.Errorf(rankcheck.EDATA, "failed to parse HTML: %v", err)
	}

	links := []rankcheck.ResultLink{}
	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		links = append(links, rankcheck.ResultLink{
			URL:   href,
			Index: len(links),
		})
	})

	return links, nil
}
