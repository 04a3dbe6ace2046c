package models

// Значения, подставляемые вместо отсутствующих полей элемента ленты.
const (
	DefaultTitle       = "No Title"
	DefaultLink        = "#"
	DefaultPubDate     = "No Date"
	DefaultDescription = "No Description"
)

// NewsItem — нормализованная новость, которую отдаёт /api/fetchNews.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
}
