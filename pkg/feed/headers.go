package feed

import (
	"math/rand"
	"net/http"
)

const userAgent = "Mozilla/5.0 (compatible; Headlines/1.0)"

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,es;q=0.8",
	"en-US,en;q=0.9,fr;q=0.8",
	"en-US,en;q=0.9,de;q=0.8",
}

// addRequestHeaders sets headers a browser would send for a json fetch
func addRequestHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json,*/*;q=0.8")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
}
