package semantic

import (
	"iter"

	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// ClassID identifies a class record.
type ClassID uint32

// NoClassID marks code outside any class.
const NoClassID ClassID = 0

func (id ClassID) IsValid() bool { return id != NoClassID }

// ElementKind classifies class members.
type ElementKind uint8

const (
	ElementMethod ElementKind = iota
	ElementGetter
	ElementSetter
	ElementConstructor
	ElementProperty
	ElementAccessor
)

func (k ElementKind) String() string {
	switch k {
	case ElementGetter:
		return "get"
	case ElementSetter:
		return "set"
	case ElementConstructor:
		return "constructor"
	case ElementProperty:
		return "property"
	case ElementAccessor:
		return "accessor"
	}
	return "method"
}

// ClassElement is one named member of a class body.
type ClassElement struct {
	Name    string
	Span    source.Span
	Private bool
	Static  bool
	Kind    ElementKind
}

// PrivateReference is a `#name` use inside a class.
type PrivateReference struct {
	Name string
	Span source.Span
	Node NodeID
}

// ClassRecord describes one class.
type ClassRecord struct {
	Node        NodeID
	Parent      ClassID
	Elements    []ClassElement
	PrivateRefs []PrivateReference
}

// ClassTable holds every class of a file, nested via parent ids.
type ClassTable struct {
	classes arena[ClassRecord]
	current ClassID
}

func newClassTable() *ClassTable {
	return &ClassTable{classes: newArena[ClassRecord]("classes", 4)}
}

func (t *ClassTable) enter(node NodeID, body *ast.ClassBody) ClassID {
	rec := ClassRecord{Node: node, Parent: t.current}
	if body != nil {
		for _, el := range body.Body {
			if e, ok := classElement(el); ok {
				rec.Elements = append(rec.Elements, e)
			}
		}
	}
	id := ClassID(t.classes.push(rec))
	t.current = id
	return id
}

func (t *ClassTable) leave() {
	if rec := t.Get(t.current); rec != nil {
		t.current = rec.Parent
	}
}

func (t *ClassTable) addPrivateReference(ref PrivateReference) {
	if rec := t.Get(t.current); rec != nil {
		rec.PrivateRefs = append(rec.PrivateRefs, ref)
	}
}

func classElement(el ast.ClassElement) (ClassElement, bool) {
	switch el := el.(type) {
	case *ast.MethodDefinition:
		name, private := ast.KeyName(el.Key, el.Computed)
		if name == "" {
			return ClassElement{}, false
		}
		kind := ElementMethod
		switch el.MethodKind {
		case ast.MethodKindGet:
			kind = ElementGetter
		case ast.MethodKindSet:
			kind = ElementSetter
		case ast.MethodKindConstructor:
			kind = ElementConstructor
		}
		return ClassElement{Name: name, Span: el.Key.Span(), Private: private, Static: el.Static, Kind: kind}, true
	case *ast.PropertyDefinition:
		name, private := ast.KeyName(el.Key, el.Computed)
		if name == "" {
			return ClassElement{}, false
		}
		kind := ElementProperty
		if el.Accessor {
			kind = ElementAccessor
		}
		return ClassElement{Name: name, Span: el.Key.Span(), Private: private, Static: el.Static, Kind: kind}, true
	}
	return ClassElement{}, false
}

// Len reports the number of classes.
func (t *ClassTable) Len() int { return t.classes.len() }

// Get returns a class record or nil.
func (t *ClassTable) Get(id ClassID) *ClassRecord { return t.classes.at(uint32(id)) }

// Ancestors yields id and its enclosing classes.
func (t *ClassTable) Ancestors(id ClassID) iter.Seq[ClassID] {
	return func(yield func(ClassID) bool) {
		for c := id; c.IsValid(); {
			rec := t.Get(c)
			if rec == nil || !yield(c) {
				return
			}
			c = rec.Parent
		}
	}
}

// DeclaresPrivate reports whether class id itself declares #name.
func (t *ClassTable) DeclaresPrivate(id ClassID, name string) bool {
	rec := t.Get(id)
	if rec == nil {
		return false
	}
	for _, el := range rec.Elements {
		if el.Private && el.Name == name {
			return true
		}
	}
	return false
}

// ResolvePrivate finds the nearest class, starting at id, that declares #name.
func (t *ClassTable) ResolvePrivate(id ClassID, name string) (ClassID, bool) {
	for c := range t.Ancestors(id) {
		if t.DeclaresPrivate(c, name) {
			return c, true
		}
	}
	return NoClassID, false
}

// ByNode returns the class opened by node.
func (t *ClassTable) ByNode(node NodeID) (ClassID, bool) {
	for i := 1; i <= t.Len(); i++ {
		id := ClassID(i) //nolint:gosec // bounded by arena size
		if t.Get(id).Node == node {
			return id, true
		}
	}
	return NoClassID, false
}
