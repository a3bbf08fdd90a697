package media

import (
	"net/url"
	"strings"
)

// cdnMarker identifies URLs served by the platform's image CDN.
const cdnMarker = "scontent"

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// sizeDirectives are the query parameter markers of a resized CDN variant.
// Other resize directives are not recognised and collapse to the bare path.
var sizeDirectives = []string{"dst-jpg_p", "dst-png_p"}

// IsCDN reports whether rawURL points at the image CDN.
func IsCDN(rawURL string) bool {
	return strings.Contains(rawURL, cdnMarker)
}

// IsImage reports whether rawURL is a direct image link rather than an HTML
// page. Empty input is never an image.
func IsImage(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	lower := strings.ToLower(rawURL)

	if isPagePermalink(lower) {
		return false
	}

	if strings.Contains(lower, cdnMarker) && !strings.HasPrefix(rawURL, "https://www.facebook.com") {
		return true
	}

	if u, err := url.Parse(rawURL); err == nil {
		path := strings.ToLower(u.Path)
		for _, ext := range imageExtensions {
			if strings.HasSuffix(path, ext) {
				return true
			}
		}
	}

	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}

	return false
}

// isPagePermalink matches photo viewer and post pages. lower must be lowercase.
func isPagePermalink(lower string) bool {
	if strings.Contains(lower, "facebook.com/photo.php") {
		return true
	}
	return strings.Contains(lower, "facebook.com/") && strings.Contains(lower, "/posts/")
}

// Normalize maps CDN URLs that differ only in signing or tracking parameters
// to the same key. A recognised size directive is kept so distinct renditions
// stay distinct. Non-CDN URLs are returned unchanged.
func Normalize(rawURL string) string {
	if !IsCDN(rawURL) {
		return rawURL
	}

	base, query, hasQuery := strings.Cut(rawURL, "?")
	if !hasQuery {
		return base
	}

	for _, param := range strings.Split(query, "&") {
		if isSizeDirective(param) {
			return base + "?" + param
		}
	}
	return base
}

func isSizeDirective(param string) bool {
	for _, d := range sizeDirectives {
		if strings.Contains(param, d) {
			return true
		}
	}
	return false
}
