package models

// Person represents a registered participant.
//
// People are identified by their trimmed name, which is the unique key in
// storage. There is no update or delete: a person lives as long as the store.
type Person struct {
	// Name is the unique, trimmed display name of the person.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the person was registered.
	CreatedAt int64 `json:"created_at"`
}
