package models

// Program is one of the organization's running initiatives.
type Program struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Category    string `json:"category" bson:"category"`
	Description string `json:"description" bson:"description"`
	Impact      string `json:"impact" bson:"impact"`
	Image       string `json:"image" bson:"image"`
}

// Event is an upcoming or past public event.
type Event struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Date        string `json:"date" bson:"date"`
	Location    string `json:"location" bson:"location"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
}

// BlogPost is a published article teaser.
type BlogPost struct {
	ID      string `json:"id" bson:"id"`
	Title   string `json:"title" bson:"title"`
	Excerpt string `json:"excerpt" bson:"excerpt"`
	Date    string `json:"date" bson:"date"`
	Image   string `json:"image" bson:"image"`
}

// Testimonial is a quote shown in the site carousel.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// Stat is a headline impact number.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OrgDetails holds the organization's public contact information.
type OrgDetails struct {
	Name       string  `json:"name"`
	ShortIntro string  `json:"shortIntro"`
	Location   string  `json:"location"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Blog       string  `json:"blog"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
}
