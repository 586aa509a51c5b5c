package domain

// Movie is a single catalog entry. Fields mirror the upstream API response
// and are consumed opaquely; nothing here is validated field-by-field.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	PosterPath       string  `json:"poster_path"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
	ReleaseDate      string  `json:"release_date"`
}
