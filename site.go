package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"portfolio-canvas/engine"
)

// Site is the copy shown on the page.
type Site struct {
	Title     string
	Subtitle  string
	Status    string
	TitleFont string
	BodyFont  string
}

// DefaultSite is used when no site script exists.
func DefaultSite() Site {
	return Site{
		Title:     "Daniel Gratza",
		Subtitle:  "UX Designer",
		Status:    "This site is currently under construction and will be available soon. Thank you for your patience.",
		TitleFont: TitleFontFile,
		BodyFont:  BodyFontFile,
	}
}

// LoadSite runs the Starlark script at path and overlays the globals it sets
// on DefaultSite. A missing file is not an error.
//
//	title = "Ada Lovelace"
//	subtitle = "Engineer"
//	status = "Back soon."
func LoadSite(path string) (Site, error) {
	site := DefaultSite()
	globals, err := engine.ExecuteFile(path, map[string]interface{}{
		"title":    site.Title,
		"subtitle": site.Subtitle,
		"status":   site.Status,
	})
	if errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return site, err
	}

	fields := map[string]*string{
		"title":      &site.Title,
		"subtitle":   &site.Subtitle,
		"status":     &site.Status,
		"title_font": &site.TitleFont,
		"body_font":  &site.BodyFont,
	}
	for name, dst := range fields {
		v, ok := globals[name]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return DefaultSite(), fmt.Errorf("%s: %s must be a string, got %T", path, name, v)
		}
		*dst = strings.TrimSpace(s)
	}
	return site, nil
}
