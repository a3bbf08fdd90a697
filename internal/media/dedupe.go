package media

// Dedupe drops non-image candidates and keeps the first URL seen for every
// normalization key. Order of first appearance is preserved, so the first
// element is the post's cover.
func Dedupe(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	images := make([]string, 0, len(candidates))

	for _, c := range candidates {
		if !IsImage(c) {
			continue
		}

		key := c
		if IsCDN(c) {
			key = Normalize(c)
		}
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		images = append(images, c)
	}

	return images
}
