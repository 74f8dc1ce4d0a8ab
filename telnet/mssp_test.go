package telnet

import "testing"

func TestMSSPEncodeDecodeRoundTrip(t *testing.T) {
	doc := MSSPDocument{
		{Name: "PLAYERS", Values: []string{"12"}},
		{Name: "CODEBASE", Values: []string{"MyMUD 1.0", "FooEngine"}},
	}

	encoded := doc.Encode(nil)
	if len(encoded) != doc.EncodedLen() {
		t.Fatalf("len(encoded)=%d EncodedLen()=%d", len(encoded), doc.EncodedLen())
	}

	decoded, err := DecodeMSSP(encoded)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(decoded) != len(doc) {
		t.Fatalf("expected %d entries, got %d", len(doc), len(decoded))
	}
	for i := range doc {
		if decoded[i].Name != doc[i].Name {
			t.Fatalf("entry %d name mismatch: got %q want %q", i, decoded[i].Name, doc[i].Name)
		}
		if len(decoded[i].Values) != len(doc[i].Values) {
			t.Fatalf("entry %d value count mismatch: got %v want %v", i, decoded[i].Values, doc[i].Values)
		}
		for j := range doc[i].Values {
			if decoded[i].Values[j] != doc[i].Values[j] {
				t.Fatalf("entry %d value %d mismatch: got %q want %q", i, j, decoded[i].Values[j], doc[i].Values[j])
			}
		}
	}
}

func TestMSSPFiltersControlBytes(t *testing.T) {
	doc := MSSPDocument{{Name: "NAME", Values: []string{"bad" + string(rune(msspVar)) + "value"}}}
	encoded := doc.Encode(nil)

	for _, b := range encoded[len("NAME")+2:] {
		if msspControlByte(b) {
			t.Fatalf("expected control bytes stripped from encoded value, found %d in %v", b, encoded)
		}
	}
}

func TestMSSPVariableWithoutValueIsMalformed(t *testing.T) {
	_, err := DecodeMSSP([]byte{msspVar, 'A'})
	if err == nil {
		t.Fatal("expected an error for a variable with no MSSP_VAL")
	}
}
