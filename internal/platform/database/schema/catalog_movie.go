package schema

import "strings"

// CatalogMovieTable represents the 'movies' table holding every catalog item
type CatalogMovieTable struct {
	Table         string
	ID            string
	Title         string
	Type          string
	Status        string
	Year          string
	Rating        string
	Category      string
	Description   string
	FrontImage    string
	BackImage     string
	CarouselImage string
	WatchLink     string
	Featured      string
	IsNewRelease  string
	IsPopular     string
	Top10         string
	Top10Order    string
	Director      string
	Cast          string
	Writers       string
	Awards        string
	Certification string
	Duration      string
	Language      string
	Country       string
	ReleaseDate   string
	Seasons       string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogMovie is the schema definition for movies
var CatalogMovie = CatalogMovieTable{
	Table:         "movies",
	ID:            "id",
	Title:         "title",
	Type:          "type",
	Status:        "status",
	Year:          "year",
	Rating:        "rating",
	Category:      "category",
	Description:   "description",
	FrontImage:    "front_image",
	BackImage:     "back_image",
	CarouselImage: "carousel_image",
	WatchLink:     "watch_link",
	Featured:      "featured",
	IsNewRelease:  "is_new_release",
	IsPopular:     "is_popular",
	Top10:         "top10",
	Top10Order:    "top10_order",
	Director:      "director",
	Cast:          "cast_members",
	Writers:       "writers",
	Awards:        "awards",
	Certification: "certification",
	Duration:      "duration",
	Language:      "language",
	Country:       "country",
	ReleaseDate:   "release_date",
	Seasons:       "seasons",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns every column in scan order
func (t CatalogMovieTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Type, t.Status, t.Year, t.Rating, t.Category, t.Description,
		t.FrontImage, t.BackImage, t.CarouselImage, t.WatchLink,
		t.Featured, t.IsNewRelease, t.IsPopular, t.Top10, t.Top10Order,
		t.Director, t.Cast, t.Writers, t.Awards,
		t.Certification, t.Duration, t.Language, t.Country, t.ReleaseDate, t.Seasons,
		t.CreatedAt, t.UpdatedAt,
	}
}

// Select returns Columns joined for a SELECT list
func (t CatalogMovieTable) Select() string {
	return strings.Join(t.Columns(), ", ")
}
