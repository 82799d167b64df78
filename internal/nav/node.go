package nav

import (
	"encoding/json"
	"strings"
)

// Type classifies a navigation node the way the host's navigation API does.
type Type int

const (
	TypeOther Type = iota
	TypeRoot
	TypeContainer
	TypeSetting
	TypeActivity
	TypeResource
	TypeCustom
)

var typeNames = map[Type]string{
	TypeOther:     "other",
	TypeRoot:      "root",
	TypeContainer: "container",
	TypeSetting:   "setting",
	TypeActivity:  "activity",
	TypeResource:  "resource",
	TypeCustom:    "custom",
}

// ParseType maps a type name to a Type. Unknown names are TypeOther.
func ParseType(s string) Type {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s {
			return t
		}
	}
	return TypeOther
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeOther]
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(b []byte) error {
	*t = ParseType(string(b))
	return nil
}

// Icon references a pix icon. Pix is the identifier ("i/navigationitem", "book", ...).
type Icon struct {
	Pix       string `json:"pix" yaml:"pix"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
	Alt       string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// IsZero reports whether the icon is absent.
func (i *Icon) IsZero() bool {
	return i == nil || i.Pix == ""
}

// Node is one entry of a host navigation tree.
//
// Hidden is the inverse of the host's display flag so that the zero value is visible.
type Node struct {
	Key      string   `json:"key" yaml:"key"`
	Type     Type     `json:"type" yaml:"type"`
	Icon     *Icon    `json:"icon,omitempty" yaml:"icon,omitempty"`
	Text     string   `json:"text" yaml:"text"`
	Action   string   `json:"action,omitempty" yaml:"action,omitempty"`
	Hidden   bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Active   bool     `json:"active,omitempty" yaml:"active,omitempty"`
	Classes  []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	Children []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Kids returns the ordered children. Safe on a nil node.
func (n *Node) Kids() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// Visible reports whether the host displays this node.
func (n *Node) Visible() bool {
	return n != nil && !n.Hidden
}

// Find returns the first node, in pre-order and including n itself,
// whose key and type both match.
func (n *Node) Find(key string, typ Type) *Node {
	if n == nil {
		return nil
	}
	if n.Key == key && n.Type == typ {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(key, typ); found != nil {
			return found
		}
	}
	return nil
}

// FindActive returns the first node flagged active, in pre-order.
func (n *Node) FindActive() *Node {
	if n == nil {
		return nil
	}
	if n.Active {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindActive(); found != nil {
			return found
		}
	}
	return nil
}

// Remove detaches the first descendant matching key and type.
// The node itself is never removed.
func (n *Node) Remove(key string, typ Type) bool {
	if n == nil {
		return false
	}
	for i, child := range n.Children {
		if child != nil && child.Key == key && child.Type == typ {
			n.Children = append(n.Children[:i:i], n.Children[i+1:]...)
			return true
		}
		if child.Remove(key, typ) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Icon != nil {
		icon := *n.Icon
		c.Icon = &icon
	}
	if n.Classes != nil {
		c.Classes = append([]string(nil), n.Classes...)
	}
	if n.Children != nil {
		c.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			c.Children = append(c.Children, child.Clone())
		}
	}
	return &c
}

// Walk visits the subtree in pre-order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// String is used in debug logs.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	b, _ := json.Marshal(struct {
		Key  string `json:"key"`
		Type Type   `json:"type"`
	}{n.Key, n.Type})
	return string(b)
}
