package entity

// Movie is one record of the catalogue. ID is supplied by the caller and is not
// guaranteed unique unless the store runs with unique ids.
type Movie struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Overview string  `json:"overview"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

// MovieFields holds every mutable attribute of a Movie.
type MovieFields struct {
	Title    string
	Overview string
	Year     int
	Rating   float64
	Category string
}

// Apply overwrites the mutable attributes, leaving ID untouched.
func (m *Movie) Apply(f MovieFields) {
	m.Title = f.Title
	m.Overview = f.Overview
	m.Year = f.Year
	m.Rating = f.Rating
	m.Category = f.Category
}
