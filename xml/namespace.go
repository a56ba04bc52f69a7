package xml

import (
	"strconv"
	"sync"

	"github.com/xmlcoder/xmlcoder-go/logging"
)

// DefaultNamespaces is the process-wide namespace registry used when Options
// does not name another one.
var DefaultNamespaces = NewNamespaceRegistry()

// NamespaceRegistry maps namespace URIs to the prefixes they are rendered
// with. It is safe for concurrent use.
type NamespaceRegistry struct {
	mu       sync.RWMutex
	prefixes map[string]string // uri -> prefix
	taken    map[string]int    // prefix -> number of uris using it
}

// NewNamespaceRegistry returns an empty registry.
func NewNamespaceRegistry() *NamespaceRegistry {
	return &NamespaceRegistry{
		prefixes: map[string]string{},
		taken:    map[string]int{},
	}
}

// Register maps uri to prefix, replacing any previous mapping for uri.
func (r *NamespaceRegistry) Register(uri, prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.prefixes[uri]; ok {
		if r.taken[old]--; r.taken[old] == 0 {
			delete(r.taken, old)
		}
	}
	r.prefixes[uri] = prefix
	r.taken[prefix]++
}

// Prefix returns the prefix registered for uri.
func (r *NamespaceRegistry) Prefix(uri string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prefixes[uri]
	return p, ok
}

func (r *NamespaceRegistry) prefixTaken(prefix string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.taken[prefix] != 0
}

// namespaceScope resolves namespace URIs for a single encode call and
// collects the declarations that end up on the root element. Declarations
// are never emitted where the namespace is used.
type namespaceScope struct {
	registry         *NamespaceRegistry
	autoPrefix       string
	defaultNamespace string
	logger           logging.Logger

	assigned map[string]string // uri -> auto assigned prefix
	next     int

	declared map[string]string // uri -> prefix
	used     map[string]string // prefix -> uri
	decls    []Attr
}

func newNamespaceScope(o Options) *namespaceScope {
	return &namespaceScope{
		registry:         o.Namespaces,
		autoPrefix:       o.NamespacePrefix,
		defaultNamespace: o.DefaultNamespace,
		logger:           o.Logger,
		assigned:         map[string]string{},
		declared:         map[string]string{},
		used:             map[string]string{},
	}
}

// resolve returns the name local renders as when qualified by uri.
func (s *namespaceScope) resolve(uri, local string) Name {
	if len(uri) == 0 || uri == s.defaultNamespace {
		return Name{Local: local}
	}

	prefix, ok := s.prefix(uri)
	if !ok {
		return Name{Local: local}
	}

	s.declare(uri, prefix)
	return Name{Space: prefix, Local: local}
}

func (s *namespaceScope) prefix(uri string) (string, bool) {
	if p, ok := s.registry.Prefix(uri); ok {
		return p, true
	}
	if p, ok := s.assigned[uri]; ok {
		return p, true
	}
	if len(s.autoPrefix) == 0 {
		return "", false
	}

	for {
		s.next++
		p := s.autoPrefix + strconv.Itoa(s.next)
		if !s.registry.prefixTaken(p) {
			s.assigned[uri] = p
			return p, true
		}
	}
}

func (s *namespaceScope) declare(uri, prefix string) {
	if _, ok := s.declared[uri]; ok {
		return
	}
	s.declared[uri] = prefix

	if other, ok := s.used[prefix]; ok {
		s.logger.Logf(logging.Warn, "namespace prefix %q declared for both %q and %q", prefix, other, uri)
	} else {
		s.used[prefix] = uri
	}

	s.logger.Logf(logging.Debug, "hoisting xmlns:%s=%q to root element", prefix, uri)
	s.decls = append(s.decls, Attr{Name: Name{Space: "xmlns", Local: prefix}, Value: uri})
}

// declarations returns the namespace declaration attributes of the root
// element, the default namespace first.
func (s *namespaceScope) declarations() []Attr {
	attrs := make([]Attr, 0, len(s.decls)+1)
	if len(s.defaultNamespace) != 0 {
		attrs = append(attrs, Attr{Name: Name{Local: "xmlns"}, Value: s.defaultNamespace})
	}
	return append(attrs, s.decls...)
}
