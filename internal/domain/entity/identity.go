package entity

// Identity is a person that can be put on call.
type Identity struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Email string `json:"email" yaml:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Roster is the ordered universe of identities the rotation draws from.
// The pairwise fallback slices it in this order.
type Roster []Identity

// Lookup finds an identity by name.
func (r Roster) Lookup(name string) (Identity, bool) {
	for _, identity := range r {
		if identity.Name == name {
			return identity, true
		}
	}
	return Identity{}, false
}

// Names returns the roster names in order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, identity := range r {
		names = append(names, identity.Name)
	}
	return names
}
