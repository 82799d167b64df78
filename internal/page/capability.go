package page

// CapabilityChecker answers whether the requesting user holds a capability in a context.
type CapabilityChecker interface {
	HasCapability(name string, ctx Context) bool
}

// FormatResolver returns the course format identifier of a course.
type FormatResolver interface {
	Format(course Course) string
}

// CapabilitySet is the capability list the host resolved for the page context.
// The host already evaluated role overrides, so the context argument is not consulted.
type CapabilitySet map[string]struct{}

// NewCapabilitySet builds a set from the capability names of a page.
func NewCapabilitySet(names []string) CapabilitySet {
	s := make(CapabilitySet, len(names))
	for _, name := range names {
		if name != "" {
			s[name] = struct{}{}
		}
	}
	return s
}

func (s CapabilitySet) HasCapability(name string, _ Context) bool {
	_, ok := s[name]
	return ok
}

// CourseFormats resolves formats from the course record, with a site default.
type CourseFormats struct {
	Default string
}

func (f CourseFormats) Format(course Course) string {
	if course.Format != "" {
		return course.Format
	}
	return f.Default
}

// CheckerFunc adapts a function to CapabilityChecker.
type CheckerFunc func(name string, ctx Context) bool

func (f CheckerFunc) HasCapability(name string, ctx Context) bool { return f(name, ctx) }
