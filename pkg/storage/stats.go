package storage

// CategoryCount is the number of titles filed under a provider category
type CategoryCount struct {
	CategoryKey string `json:"category_key"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

// CatalogStats summarizes how much of the catalog has been matched
type CatalogStats struct {
	Titles       int                     `json:"titles"`
	ByResolution map[ResolutionState]int `json:"by_resolution"`
	ByCategory   []CategoryCount         `json:"by_category"`
}
