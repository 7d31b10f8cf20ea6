package model

// BlogPost represents an article on the café blog. Date is a display string
// (e.g. "Oct 12, 2023") chosen by the author.
type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Content string `json:"content"`
}
