package domain

// Reference is a single lookup row (category, manufacturer or vendor).
type Reference struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ReferenceData holds the session-immutable lookup sets, each ordered by
// name ascending.
type ReferenceData struct {
	Categories    []Reference `json:"categories"`
	Manufacturers []Reference `json:"manufacturers"`
	Vendors       []Reference `json:"vendors"`
}
