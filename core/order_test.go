package core

import "testing"

func TestOrderSpec_Resolve(t *testing.T) {
	def := DefaultOrder()

	if got := OrderSpec(nil).Resolve(); got.String() != def.String() {
		t.Errorf("empty spec resolved to %v", got)
	}
	if got := (OrderSpec{FieldMessage, FieldAll}).Resolve(); got.String() != def.String() {
		t.Errorf("spec with all resolved to %v", got)
	}
	custom := OrderSpec{FieldMessage, FieldMessage, FieldDash}
	if got := custom.Resolve(); got.String() != "message,message,dash" {
		t.Errorf("custom spec resolved to %v", got)
	}
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder([]string{"serial", " Date ", "", "message"})
	if err != nil {
		t.Fatalf("ParseOrder() error = %v", err)
	}
	if o.String() != "serial,date,message" {
		t.Errorf("ParseOrder() = %v", o)
	}

	o, err = ParseOrder([]string{"serial", "colour", "level"})
	if err == nil {
		t.Fatal("Expected error for unknown kind")
	}
	if o.String() != "serial,level" {
		t.Errorf("ParseOrder() kept %v", o)
	}
}

func TestFieldKind_Literal(t *testing.T) {
	for _, k := range []FieldKind{FieldDash, FieldSpace} {
		if !k.Literal() {
			t.Errorf("%v should be literal", k)
		}
	}
	if FieldMessage.Literal() {
		t.Error("message is not literal")
	}
}
