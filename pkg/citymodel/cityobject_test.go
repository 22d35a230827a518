package citymodel

import "testing"

func TestCityObjectTreeInvariants(t *testing.T) {
	root := NewCityObject("root", Building)
	child := NewCityObject("child", Room)
	root.AddChild(child)

	if !root.IsRoot() {
		t.Fatalf("root should have no parent")
	}
	if child.IsRoot() {
		t.Fatalf("child should have a parent")
	}
	if child.Parent != root {
		t.Fatalf("child.Parent should point back to root")
	}
}

func TestCityObjectHasContent(t *testing.T) {
	obj := NewCityObject("obj", GenericCityObject)
	if obj.HasContent() {
		t.Fatalf("freshly created object should have no content")
	}
	obj.AddGeometry(NewGeometry("g1", 2, Unknown))
	if !obj.HasContent() {
		t.Fatalf("object with a geometry should have content")
	}
}

func TestCityObjectCreationTime(t *testing.T) {
	obj := NewCityObject("obj", Building)
	obj.SetProperty("creationDate", "2020-05-01")

	ts, ok := obj.CreationTime()
	if !ok {
		t.Fatalf("expected creationDate to parse")
	}
	if ts.Year() != 2020 || ts.Month() != 5 || ts.Day() != 1 {
		t.Fatalf("parsed time = %v, want 2020-05-01", ts)
	}

	obj2 := NewCityObject("obj2", Building)
	if _, ok := obj2.CreationTime(); ok {
		t.Fatalf("missing creationDate should report ok=false")
	}
}
