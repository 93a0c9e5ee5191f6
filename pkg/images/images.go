package images

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"net/url"
	"strings"
)

// DefaultBaseURL serves seeded placeholder photos by keyword.
const DefaultBaseURL = "https://loremflickr.com/640/480"

// NounSource supplies a fallback category when a product name yields none.
type NounSource func() string

var genericNouns = []string{
	"gadget", "widget", "item", "thing", "tool",
	"device", "object", "unit", "piece", "article",
}

// RandomNoun picks a generic noun. Non-deterministic by design; callers that
// need reproducibility inject their own NounSource.
func RandomNoun() string {
	return genericNouns[rand.Intn(len(genericNouns))]
}

// Category derives a display category from the last whitespace-delimited word
// of the lowercased product name. An empty result falls back to the supplied
// noun source.
func Category(name string, fallback NounSource) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) > 0 {
		return words[len(words)-1]
	}
	if fallback == nil {
		fallback = RandomNoun
	}
	return fallback()
}

// Seed builds the stable per-item seed from a product identifier and category.
func Seed(productID, category string) string {
	return productID + "-" + category
}

// URL computes a decorative image reference deterministically from the seed.
// The seed is hashed into the lock parameter so identical inputs always map
// to the same picture.
func URL(baseURL, category, seed string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%s?lock=%d", strings.TrimRight(baseURL, "/"), url.PathEscape(category), lock(seed))
}

func lock(seed string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return h.Sum32() % 100000
}
