package site

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BrokenLink is a local reference in a built page whose target is missing.
type BrokenLink struct {
	Page   string // page path relative to the site root
	Target string // attribute value as written
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s -> %s", b.Page, b.Target)
}

// CheckLinks parses every HTML page under dir and reports relative href and
// src references that do not resolve to a file. External, fragment and data
// URLs are skipped.
func CheckLinks(dir string) ([]BrokenLink, error) {
	var broken []BrokenLink
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".html" {
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		doc, err := goquery.NewDocumentFromReader(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}

		rel, _ := filepath.Rel(dir, p)
		page := filepath.ToSlash(rel)
		doc.Find("a[href], link[href], img[src], script[src]").Each(func(_ int, s *goquery.Selection) {
			target, ok := s.Attr("href")
			if !ok {
				target, _ = s.Attr("src")
			}
			local, ok := localTarget(target)
			if !ok {
				return
			}
			if _, err := os.Stat(filepath.Join(filepath.Dir(p), filepath.FromSlash(local))); err != nil {
				broken = append(broken, BrokenLink{Page: page, Target: target})
			}
		})
		return nil
	})
	return broken, err
}

func localTarget(ref string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	if u.Path == "" {
		return "", false
	}
	return u.Path, true
}
