package assets

import (
	"fmt"
	"net/url"
)

// DefaultVersion is the cache bucket tag shipped with this build.
// Changing it is the only way to invalidate previously cached assets.
const DefaultVersion = "ajusta-estoque-app-v1"

// DefaultManifest lists the application files pre-cached at install.
// Relative entries resolve against the asset origin.
var DefaultManifest = Manifest{
	"./ajustaEstoqueApp.html",
	"../css/styles.css",
	"https://cdn.tailwindcss.com",
	"https://unpkg.com/html5-qrcode",
	"../js/apiConfig.js",
	"../js/utils.js",
}

// Manifest is an ordered list of URLs to pre-fetch. No wildcard semantics.
type Manifest []string

// Resolve turns every entry into its canonical absolute URL
func (m Manifest) Resolve(origin *url.URL) ([]string, error) {
	resolved := make([]string, 0, len(m))
	for _, raw := range m {
		ref, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid manifest entry %q: %w", raw, err)
		}
		resolved = append(resolved, canonical(origin.ResolveReference(ref)))
	}
	return resolved, nil
}

// canonical нормализует URL, чтобы ключи манифеста и запросов совпадали
func canonical(u *url.URL) string {
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	if c.Path == "" {
		c.Path = "/"
		c.RawPath = ""
	}
	return c.String()
}
