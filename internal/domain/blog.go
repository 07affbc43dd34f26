package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlogCategory is one of the three topical groups for posts.
type BlogCategory string

const (
	BlogCompost   BlogCategory = "compost"
	BlogRecycling BlogCategory = "recycling"
	BlogZeroWaste BlogCategory = "zero-waste"
)

// DefaultBlogAuthor is the byline used when a post is created without one.
const DefaultBlogAuthor = "Toprağa Dönüş Ekibi"

// BlogPost is an article on the project blog.
// At most one post should carry Featured=true; the admin write path enforces
// this by clearing the flag on all other rows before inserting a featured
// post. The read path must still tolerate pre-existing rows that violate it.
type BlogPost struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Excerpt   string       `json:"excerpt,omitempty"`
	Content   string       `json:"content"`
	Category  BlogCategory `json:"category"`
	ImageURL  string       `json:"image,omitempty"`
	Author    string       `json:"author"`
	ReadTime  string       `json:"read_time,omitempty"` // display label, e.g. "5 dk"
	Featured  bool         `json:"featured"`
	Published bool         `json:"published"`
	CreatedAt time.Time    `json:"created_at"`
}
