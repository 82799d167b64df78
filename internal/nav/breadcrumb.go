package nav

// Crumb is one entry of the page's navbar trail.
type Crumb struct {
	Key  string `json:"key" yaml:"key"`
	Type Type   `json:"type" yaml:"type"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Breadcrumb is the ordered navbar trail, root first.
type Breadcrumb []Crumb

// Last returns the current leaf of the trail, or nil when the trail is empty.
func (b Breadcrumb) Last() *Crumb {
	if len(b) == 0 {
		return nil
	}
	return &b[len(b)-1]
}

// Matches reports whether the crumb points at node (same key and type).
func (c *Crumb) Matches(n *Node) bool {
	return c != nil && n != nil && c.Key == n.Key && c.Type == n.Type
}
