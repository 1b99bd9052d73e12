package types

import (
	"errors"
	"testing"

	sdoerrors "github.com/jacoelho/sdo/errors"
)

func TestKindNamesRoundTrip(t *testing.T) {
	t.Parallel()

	kinds := Kinds()
	if len(kinds) != 11 {
		t.Fatalf("len(Kinds()) = %d, want 11", len(kinds))
	}
	for _, k := range kinds {
		if !k.Valid() {
			t.Fatalf("%v.Valid() = false", k)
		}
		if got := ParseKind(k.String()); got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if ParseKind("") != KindUnspecified {
		t.Fatal("ParseKind(\"\") did not return KindUnspecified")
	}
	if ParseKind("Decimal") != KindUnspecified {
		t.Fatal("ParseKind(Decimal) did not return KindUnspecified")
	}
	if KindUnspecified.Valid() {
		t.Fatal("KindUnspecified.Valid() = true")
	}
}

func TestPrimitiveTypesAreShared(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got := Primitive(k)
		if got == nil {
			t.Fatalf("Primitive(%v) = nil", k)
		}
		if got != PrimitiveByName(k.String()) {
			t.Fatalf("Primitive(%v) != PrimitiveByName(%q)", k, k.String())
		}
		if got.URI != SDOURI || got.Kind != k {
			t.Fatalf("Primitive(%v) = %s kind %v", k, got.QName(), got.Kind)
		}
	}
	if Primitive(KindDataObject).DataType {
		t.Fatal("DataObject primitive is a data type")
	}
	if !Primitive(KindInteger).DataType {
		t.Fatal("Integer primitive is not a data type")
	}
	if Primitive(KindUnspecified) != nil {
		t.Fatal("Primitive(KindUnspecified) != nil")
	}
}

func TestCatalogDefineAndLookup(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	company := c.MustDefine("company.xsd", "Company", TypeOptions{})
	dept := c.MustDefine("company.xsd", "Department", TypeOptions{Open: true, Sequenced: true})

	if got := c.Lookup("company.xsd", "Company"); got != company {
		t.Fatalf("Lookup(Company) = %v, want %v", got, company)
	}
	if got := c.Lookup(SDOURI, "String"); got != Primitive(KindString) {
		t.Fatalf("Lookup(commonj.sdo#String) = %v", got)
	}
	if got := c.Lookup("other", "Company"); got != nil {
		t.Fatalf("Lookup(other#Company) = %v, want nil", got)
	}
	if company.Kind != KindDataObject {
		t.Fatalf("Company.Kind = %v, want DataObject", company.Kind)
	}

	got := c.Types()
	if len(got) != 2 || got[0] != company || got[1] != dept {
		t.Fatalf("Types() = %v, want [Company Department]", got)
	}

	_, err := c.Define("company.xsd", "Company", TypeOptions{})
	if !errors.Is(err, sdoerrors.ErrDuplicateName) {
		t.Fatalf("Define(duplicate) error = %v, want ErrDuplicateName", err)
	}
	_, err = c.Define(SDOURI, "String", TypeOptions{})
	if !errors.Is(err, sdoerrors.ErrDuplicateName) {
		t.Fatalf("Define(commonj.sdo#String) error = %v, want ErrDuplicateName", err)
	}
	_, err = c.Define("x", "", TypeOptions{})
	if !errors.Is(err, sdoerrors.ErrInvalidArgument) {
		t.Fatalf("Define(empty) error = %v, want ErrInvalidArgument", err)
	}
}

func TestAddPropertyPreservesOrder(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	emp := c.MustDefine("company.xsd", "Employee", TypeOptions{})
	name := emp.MustAddProperty("name", Primitive(KindString), false)
	sn := emp.MustAddProperty("SN", Primitive(KindString), false)
	skills := emp.MustAddProperty("skills", Primitive(KindString), true)

	props := emp.Properties()
	want := []*Property{name, sn, skills}
	if len(props) != len(want) {
		t.Fatalf("len(Properties()) = %d, want %d", len(props), len(want))
	}
	for i := range want {
		if props[i] != want[i] {
			t.Fatalf("Properties()[%d] = %s, want %s", i, props[i].Name, want[i].Name)
		}
	}
	if name.Owner() != emp {
		t.Fatal("name.Owner() != Employee")
	}
	if !skills.Many || !skills.IsDataType() || skills.IsStructural() {
		t.Fatalf("skills = %+v", skills)
	}
	if emp.Property("SN") != sn {
		t.Fatal("Property(SN) mismatch")
	}

	_, err := emp.AddProperty("name", Primitive(KindString), false)
	if !errors.Is(err, sdoerrors.ErrDuplicateName) {
		t.Fatalf("AddProperty(duplicate) error = %v", err)
	}
	_, err = emp.AddProperty("manager", nil, false)
	if !errors.Is(err, sdoerrors.ErrInvalidArgument) {
		t.Fatalf("AddProperty(nil type) error = %v", err)
	}
	_, err = Primitive(KindString).AddProperty("x", Primitive(KindString), false)
	if !errors.Is(err, sdoerrors.ErrTypeMismatch) {
		t.Fatalf("AddProperty(on data type) error = %v", err)
	}
	root := Primitive(KindDataObject)
	_, err = root.AddProperty("x", Primitive(KindString), false)
	if !errors.Is(err, sdoerrors.ErrInvalidArgument) {
		t.Fatalf("AddProperty(on commonj.sdo#DataObject) error = %v", err)
	}
	if len(root.Properties()) != 0 {
		t.Fatalf("commonj.sdo#DataObject gained %d properties", len(root.Properties()))
	}
}

func TestOpenPropertyHasNoOwner(t *testing.T) {
	t.Parallel()

	p := NewOpenProperty("extra", nil, false)
	if p.Owner() != nil {
		t.Fatal("open property has an owner")
	}
	if p.Kind() != KindUnspecified {
		t.Fatalf("Kind() = %v, want unspecified", p.Kind())
	}
	if p.IsDataType() || p.IsStructural() {
		t.Fatal("pending property reports a shape")
	}
}
