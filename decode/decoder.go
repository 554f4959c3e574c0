package decode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/cascade/cssom"
)

// Errors of decoding.
var (
	ErrUnsupported  = errors.New("unsupported property")
	ErrInvalidValue = errors.New("invalid property value")
)

// decodeFunc decodes a declaration into out. It returns false if the value is
// invalid; out may then hold partial results and has to be discarded.
type decodeFunc func(d *cssom.Declaration, out *Assignments) bool

// Decoder decodes declarations, dispatching on the property name.
type Decoder struct {
	table map[string]decodeFunc
}

// NewDecoder creates a decoder for all supported properties.
func NewDecoder() *Decoder {
	return &Decoder{table: registry()}
}

var defaultDecoder struct {
	sync.Once
	dec *Decoder
}

// Default returns a shared decoder. Decoders are read-only and may be used
// concurrently.
func Default() *Decoder {
	defaultDecoder.Do(func() {
		defaultDecoder.dec = NewDecoder()
	})
	return defaultDecoder.dec
}

// Supports is true for properties the decoder knows how to decode.
func (dec *Decoder) Supports(property string) bool {
	_, ok := dec.table[strings.ToLower(property)]
	return ok
}

// Names returns all supported properties, sorted.
func (dec *Decoder) Names() []string {
	names := make([]string, 0, len(dec.table))
	for name := range dec.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode decodes a declaration. Unknown properties result in ErrUnsupported,
// malformed values in ErrInvalidValue. Errors are never partial: if an error
// is returned, no assignment has been made.
func (dec *Decoder) Decode(d *cssom.Declaration) (*Assignments, error) {
	name := strings.ToLower(d.Property)
	fn, ok := dec.table[name]
	if !ok {
		tracer().Debugf("unsupported property %s", name)
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	if name != d.Property {
		d = &cssom.Declaration{Property: name, Terms: d.Terms, Important: d.Important}
	}
	out := NewAssignments()
	if d.Len() == 0 || !fn(d, out) {
		tracer().Debugf("invalid value in declaration %s", d)
		return nil, fmt.Errorf("%w: %s", ErrInvalidValue, d)
	}
	return out, nil
}
