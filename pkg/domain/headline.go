package domain

// Headline represents a single news item returned by the headlines API
type Headline struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// HeadlineResponse is the payload returned by the headlines API.
// Headlines is nil when the payload has no headlines field.
type HeadlineResponse struct {
	Headlines []Headline `json:"headlines"`
}
