package calendar

// Permission is a named read capability granted to a staff member. Name is
// the stable module identifier used for source selection; Type is a coarser
// grouping the selector ignores.
type Permission struct {
	Type string `json:"PermissionType"`
	Name string `json:"PermissionName"`
}

// PermissionSet is the request-scoped set of permission names resolved for
// one staff member. It preserves the resolver's iteration order, which in
// turn fixes the provider invocation order of the feed. Never mutated after
// construction.
type PermissionSet struct {
	names []string
	index map[string]struct{}
}

// NewPermissionSet builds a set from resolved permissions, dropping
// duplicate names while keeping first-seen order.
func NewPermissionSet(perms []Permission) PermissionSet {
	s := PermissionSet{index: make(map[string]struct{}, len(perms))}
	for _, p := range perms {
		if p.Name == "" {
			continue
		}
		if _, ok := s.index[p.Name]; ok {
			continue
		}
		s.index[p.Name] = struct{}{}
		s.names = append(s.names, p.Name)
	}
	return s
}

// Has reports whether the set contains the permission name.
func (s PermissionSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the permission names in resolution order.
func (s PermissionSet) Names() []string {
	return s.names
}

// Len returns the number of distinct permission names.
func (s PermissionSet) Len() int {
	return len(s.names)
}
