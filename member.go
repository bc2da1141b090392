package enumx

// AttrDescription is the conventional attribute key for human readable
// descriptions. FormatDescription reads it, and parsing falls back to it
// when the format list says so.
const AttrDescription = "description"

// Attr is one key/value annotation attached to a member at definition time.
// Attributes are opaque to the engine except where a format names them.
type Attr struct {
	Key   string
	Value string
}

// Desc is shorthand for a description attribute.
func Desc(text string) Attr {
	return Attr{Key: AttrDescription, Value: text}
}

// Member declares one named constant of an enum: the identifier, the typed
// value and optional attributes. Declaration order matters for aliases, see
// Define.
type Member[E Integer] struct {
	Name  string
	Value E
	Attrs []Attr
}

// member is the erased form held by an Info: the raw width-masked bit
// pattern, its order-normalized image, the declaration index, and the
// attribute slice shared with the typed view.
type member struct {
	bits  uint64
	norm  uint64
	name  string
	attrs []Attr
	decl  int32
}

// attr returns the value of the member's first attribute with key.
func (m *member) attr(key string) (string, bool) {
	for i := range m.attrs {
		if m.attrs[i].Key == key {
			return m.attrs[i].Value, true
		}
	}
	return "", false
}
