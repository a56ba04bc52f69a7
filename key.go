package xmlcoder

// Role controls where a keyed field lands in the enclosing element.
type Role int

// Enumerates the field roles.
const (
	// RoleElement wraps the field value in a child element named after the
	// key.
	RoleElement Role = iota

	// RoleAttribute emits the field value as an attribute of the enclosing
	// element.
	RoleAttribute

	// RoleInlineText emits the field value as a bare text node among the
	// enclosing element's children. The key name is not used.
	RoleInlineText

	// RoleArray places the members of a sequence value directly inside the
	// element named after the key, without a per-member element. A Wrapper
	// adds one more element between the two.
	RoleArray
)

func (r Role) String() string {
	switch r {
	case RoleElement:
		return "element"
	case RoleAttribute:
		return "attribute"
	case RoleInlineText:
		return "inline-text"
	case RoleArray:
		return "array"
	default:
		return "unknown"
	}
}

// Key identifies a field of a keyed value.
type Key struct {
	// Name is the local name of the field.
	Name string

	// Namespace is the namespace URI qualifying Name, if any.
	Namespace string

	// Role selects attribute, inline text or flattened array placement. The
	// zero value is RoleElement.
	Role Role

	// Wrapper names an extra element inside the key element that RoleArray
	// members are placed in. Empty means the members sit directly in the
	// key element.
	Wrapper string
}

// ElementKey returns a key with the default element role.
func ElementKey(name string) Key {
	return Key{Name: name}
}

// AttributeKey returns a key with the attribute role.
func AttributeKey(name string) Key {
	return Key{Name: name, Role: RoleAttribute}
}

// InlineTextKey returns a key with the inline text role.
func InlineTextKey(name string) Key {
	return Key{Name: name, Role: RoleInlineText}
}

// ArrayKey returns a key with the array role. wrapper may be empty.
func ArrayKey(name, wrapper string) Key {
	return Key{Name: name, Role: RoleArray, Wrapper: wrapper}
}

// WithNamespace returns a copy of k qualified by the namespace URI.
func (k Key) WithNamespace(uri string) Key {
	k.Namespace = uri
	return k
}
