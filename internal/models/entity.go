package models

// Entity is the stored form of a customer or supplier. The map key it is
// stored under is its id; the kind is implied by the collection it lives in.
type Entity struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedOn string `json:"created_on"`
}

// EntityCollection maps entity id to entity; one collection per kind.
type EntityCollection map[string]Entity
