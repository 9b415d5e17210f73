package model

// Name is a person's first/last name pair.
// ID is assigned by the store on creation and never changes afterwards.
type Name struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}
