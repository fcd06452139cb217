package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"career-compass/internal/repository"

	"github.com/gocolly/colly/v2"
)

type FreeCodeCampFetcher struct {
	baseURL     string
	allowedHost string
}

func NewFreeCodeCampFetcher() *FreeCodeCampFetcher {
	f := &FreeCodeCampFetcher{baseURL: "https://www.freecodecamp.org"}
	f.allowedHost = hostFromBaseURL(f.baseURL)
	return f
}

func NewFreeCodeCampFetcherWithBaseURL(baseURL string) *FreeCodeCampFetcher {
	f := &FreeCodeCampFetcher{baseURL: strings.TrimSpace(baseURL)}
	if f.baseURL == "" {
		f.baseURL = "https://www.freecodecamp.org"
	}
	f.allowedHost = hostFromBaseURL(f.baseURL)
	return f
}

func (f *FreeCodeCampFetcher) Name() string { return "freecodecamp" }

func (f *FreeCodeCampFetcher) Fetch(ctx context.Context, skill string, limit int) ([]repository.LearningResourceUpsert, error) {
	if f == nil {
		return nil, fmt.Errorf("nil fetcher")
	}
	if limit <= 0 {
		limit = 20
	}

	tag := freecodecampTag(skill)
	if tag == "" {
		return nil, nil
	}

	c := colly.NewCollector(
		colly.AllowedDomains(f.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 250 * time.Millisecond})

	type card struct {
		title string
		link  string
	}
	items := make([]card, 0)

	c.OnHTML("h2 a[href]", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.Text)
		href := strings.TrimSpace(e.Attr("href"))
		if title == "" || href == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		items = append(items, card{title: title, link: abs})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "CareerCompassFetcher/0.1")
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tagURL := fmt.Sprintf("%s/news/tag/%s/", strings.TrimRight(f.baseURL, "/"), tag)
	if err := c.Visit(tagURL); err != nil {
		return nil, err
	}

	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]repository.LearningResourceUpsert, 0, len(items))
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if _, ok := dedup[it.link]; ok {
			continue
		}
		dedup[it.link] = struct{}{}
		out = append(out, repository.LearningResourceUpsert{
			SkillName: skill,
			Name:      it.title,
			Type:      "article",
			URL:       it.link,
			Source:    "freecodecamp",
		})
	}
	return out, nil
}

// freecodecampTag maps a skill name onto the news tag slug.
func freecodecampTag(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

func hostFromBaseURL(base string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return "www.freecodecamp.org"
	}
	host := u.Host
	if host == "" {
		return "www.freecodecamp.org"
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
