package bitset

import "testing"

func TestSetContains(t *testing.T) {
	var c ByteClass
	c.Set('a')
	c.Set('z')
	if !c.Contains('a') || !c.Contains('z') {
		t.Fatal("expected a and z to be members")
	}
	if c.Contains('b') {
		t.Fatal("b should not be a member")
	}
}

func TestSetRangeFullSpan(t *testing.T) {
	var c ByteClass
	c.SetRange(0x00, 0xFF)
	for b := 0; b <= 0xFF; b++ {
		if !c.Contains(byte(b)) {
			t.Fatalf("byte %#x should be a member of a full-range class", b)
		}
	}
}

func TestNegate(t *testing.T) {
	var c ByteClass
	c.SetRange('0', '9')
	c.Negate()
	if c.Contains('5') {
		t.Fatal("negated class should not contain '5'")
	}
	if !c.Contains('a') {
		t.Fatal("negated class should contain 'a'")
	}
}

func TestEmpty(t *testing.T) {
	var c ByteClass
	if !c.Empty() {
		t.Fatal("zero value should be empty")
	}
	c.Set(0)
	if c.Empty() {
		t.Fatal("class with byte 0 set should not be empty")
	}
}

func TestClone(t *testing.T) {
	var c ByteClass
	c.Set('x')
	clone := c.Clone()
	clone.Set('y')
	if c.Contains('y') {
		t.Fatal("mutating the clone should not affect the original")
	}
	if !clone.Contains('x') {
		t.Fatal("clone should retain original members")
	}
}
