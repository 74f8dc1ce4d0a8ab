package telnet

// MSDPKind discriminates the three shapes an MSDP value can take.
type MSDPKind byte

const (
	MSDPString MSDPKind = iota
	MSDPArray
	MSDPTable
)

// MSDPValue is the recursive sum type carried by MSDP: a scalar byte
// string, an ordered array of values, or an unordered table keyed by
// variable name. Only the field matching Kind is meaningful.
type MSDPValue struct {
	Kind   MSDPKind
	String []byte
	Array  []MSDPValue
	Table  map[string]MSDPValue
}

// MSDPDocument is the top-level MSDP payload: a sequence of VAR/VAL
// entries with no surrounding OPEN/CLOSE bracket, unlike a nested
// Table. It is the Argument implementation registered for MSDP.
type MSDPDocument map[string]MSDPValue

func (d MSDPDocument) EncodedLen() int {
	total := 0
	for key, val := range d {
		total += keyEncodedLen(key) + val.EncodedLen()
	}
	return total
}

func (d MSDPDocument) Encode(dst []byte) []byte {
	for key, val := range d {
		dst = encodeKey(dst, key)
		dst = val.encodeValue(dst)
	}
	return dst
}

// EncodedLen returns the length VAL plus this value's contents would
// occupy on the wire, matching the grammar's "value" production.
func (v MSDPValue) EncodedLen() int {
	return 1 + v.innerLen()
}

func (v MSDPValue) innerLen() int {
	switch v.Kind {
	case MSDPString:
		return len(v.String)
	case MSDPArray:
		total := 2
		for _, elem := range v.Array {
			total += elem.EncodedLen()
		}
		return total
	case MSDPTable:
		total := 2
		for key, elem := range v.Table {
			total += keyEncodedLen(key) + elem.EncodedLen()
		}
		return total
	default:
		return 0
	}
}

func keyEncodedLen(key string) int {
	return 1 + len(key)
}

// Equal compares two MSDP values under the round-trip equality the
// protocol promises: byte-exact strings and keys, order-independent
// tables, order-sensitive arrays.
func (v MSDPValue) Equal(other MSDPValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case MSDPString:
		return string(v.String) == string(other.String)
	case MSDPArray:
		if len(v.Array) != len(other.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(other.Array[i]) {
				return false
			}
		}
		return true
	case MSDPTable:
		if len(v.Table) != len(other.Table) {
			return false
		}
		for key, val := range v.Table {
			otherVal, ok := other.Table[key]
			if !ok || !val.Equal(otherVal) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal compares two top-level MSDP documents the same way MSDPValue
// compares a Table.
func (d MSDPDocument) Equal(other MSDPDocument) bool {
	if len(d) != len(other) {
		return false
	}
	for key, val := range d {
		otherVal, ok := other[key]
		if !ok || !val.Equal(otherVal) {
			return false
		}
	}
	return true
}

// NewMSDPString constructs a scalar MSDP value from raw bytes.
func NewMSDPString(s string) MSDPValue {
	return MSDPValue{Kind: MSDPString, String: []byte(s)}
}

// NewMSDPArray constructs an MSDP array value.
func NewMSDPArray(values ...MSDPValue) MSDPValue {
	return MSDPValue{Kind: MSDPArray, Array: values}
}

// NewMSDPTable constructs an MSDP table value.
func NewMSDPTable(entries map[string]MSDPValue) MSDPValue {
	return MSDPValue{Kind: MSDPTable, Table: entries}
}
