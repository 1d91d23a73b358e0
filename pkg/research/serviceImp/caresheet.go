package serviceImp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"growsphere/entities"
)

// ImportedConfidence is reported for facts read from a care sheet.
const ImportedConfidence = 0.6

const maxPageBytes = 2 << 20

// sectionEnd closes a heading's section.
const sectionEnd = "h1,h2,h3,h4,dl,table"

var (
	wsRX     = regexp.MustCompile(`\s+`)
	monthsRX = regexp.MustCompile(`(\d+)\s*months?`)
)

func clean(s string) string { return strings.TrimSpace(wsRX.ReplaceAllString(s, " ")) }

// sectionText returns the text that follows a heading: the next dd, or the
// paragraphs and list items up to the next heading.
func sectionText(h *goquery.Selection) string {
	if goquery.NodeName(h) == "dt" {
		return clean(h.NextFiltered("dd").Text())
	}
	var parts []string
	h.NextUntil(sectionEnd).Each(func(_ int, s *goquery.Selection) {
		if t := clean(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

func listItems(h *goquery.Selection) []string {
	var out []string
	h.NextUntil(sectionEnd).Find("li").Each(func(_ int, s *goquery.Selection) {
		if t := clean(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// parseCareSheet extracts facts from a care-sheet page. Sections are found
// by heading keywords (h2-h4 or dt).
func parseCareSheet(r io.Reader, name string) (entities.PlantFacts, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return entities.PlantFacts{}, err
	}
	f := entities.PlantFacts{Confidence: ImportedConfidence}

	f.Name = clean(name)
	if f.Name == "" {
		f.Name = clean(doc.Find("h1").First().Text())
	}
	if f.Name == "" {
		f.Name = clean(doc.Find("title").First().Text())
	}
	if f.Name == "" {
		return f, fmt.Errorf("care sheet has no plant name")
	}
	f.ScientificName = clean(doc.Find("h1 + p em, h1 + p i, .scientific-name").First().Text())
	f.Description = clean(doc.Find("h1 + p").First().Text())

	doc.Find("h2,h3,h4,dt").Each(func(_ int, h *goquery.Selection) {
		head := strings.ToLower(clean(h.Text()))
		body := sectionText(h)
		switch {
		case strings.Contains(head, "climate"):
			f.Climate = body
		case strings.Contains(head, "soil"):
			f.Soil = body
		case strings.Contains(head, "fertili"):
			f.Fertilizer = body
		case strings.Contains(head, "growth period"), strings.Contains(head, "growing period"):
			if m := monthsRX.FindStringSubmatch(body); m != nil {
				f.GrowthPeriod, _ = strconv.Atoi(m[1])
			}
		case strings.Contains(head, "harvest"):
			f.HarvestTime = body
		case strings.Contains(head, "season"):
			for _, s := range strings.Split(body, ",") {
				if s = clean(s); s != "" {
					f.PlantingSeasons = append(f.PlantingSeasons, s)
				}
			}
		case strings.Contains(head, "disease"):
			f.CommonDiseases = listItems(h)
		case strings.Contains(head, "tip"):
			f.Tips = listItems(h)
		}
	})
	if f.GrowthPeriod == 0 {
		f.GrowthPeriod = 3
	}
	if img, ok := doc.Find("img").First().Attr("src"); ok {
		f.Image = img
	}
	return f, nil
}

func fetchPage(ctx context.Context, url string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	if resp.ContentLength > maxPageBytes {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "text/html") {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	return &cancelBody{io.LimitReader(resp.Body, maxPageBytes), resp.Body, cancel}, nil
}

type cancelBody struct {
	io.Reader
	c      io.Closer
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	defer b.cancel()
	return b.c.Close()
}
