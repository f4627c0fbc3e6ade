package models

// Founder is a leadership/team member who can be the subject of a booking preference.
type Founder struct {
	ID             string   `json:"id" bson:"id"`
	Name           string   `json:"name" bson:"name"`
	Role           string   `json:"role" bson:"role"`
	Specialization string   `json:"specialization" bson:"specialization"`
	Quote          string   `json:"quote" bson:"quote"`
	Bio            string   `json:"bio" bson:"bio"`
	Experience     string   `json:"experience" bson:"experience"`
	Tags           []string `json:"tags" bson:"tags"`
	Image          string   `json:"image" bson:"image"`
}

// StaffOption is the shape the booking widget renders in its staff selector.
type StaffOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
