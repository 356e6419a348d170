package entity

// Kind discriminates the closed entity variant set.
//
// These names are stable across versions; wire payloads and stored objects
// carry them verbatim.
type Kind string

const (
	KindClass                         Kind = "Class"
	KindIndividual                    Kind = "Individual"
	KindClassAssertion                Kind = "ClassAssertion"
	KindObjectPropertyAssertion       Kind = "ObjectPropertyAssertion"
	KindAnnotation                    Kind = "Annotation"
	KindAnnotationAssertion           Kind = "AnnotationAssertion"
	KindNegativeAnnotationAssertion   Kind = "NegativeAnnotationAssertion"
	KindDataPropertyAssertion         Kind = "DataPropertyAssertion"
	KindNegativeDataPropertyAssertion Kind = "NegativeDataPropertyAssertion"
)

// Entity is a statement in the ontology model. The variant set is closed:
// every implementation lives in this package.
type Entity interface {
	EntityKind() Kind
}

// Class declares a class of individuals.
type Class struct {
	Annotations  []string `json:"annotations,omitempty"`
	SuperClasses []string `json:"superClasses,omitempty"`
}

// Individual declares a named individual.
type Individual struct {
	Annotations     []string `json:"annotations,omitempty"`
	ClassAssertions []string `json:"classAssertions,omitempty"`
}

// ClassAssertion states that a subject belongs to a class.
type ClassAssertion struct {
	Annotations []string `json:"annotations,omitempty"`
	Subject     string   `json:"subject"`
	Class       string   `json:"class"`
}

// ObjectPropertyAssertion relates two individuals through a property.
type ObjectPropertyAssertion struct {
	Annotations []string `json:"annotations,omitempty"`
	Subject     string   `json:"subject"`
	Property    string   `json:"property"`
	Target      string   `json:"target"`
}

// Annotation attaches a serialized value to a property. Value is mandatory:
// a nil Value is still presented to validation and fails there.
type Annotation struct {
	Annotations []string `json:"annotations,omitempty"`
	Property    string   `json:"property"`
	Value       []byte   `json:"value"`
}

// AnnotationAssertion attaches an optional serialized value to a subject.
// A nil Value means absent; a present-but-empty Value is validated as data.
type AnnotationAssertion struct {
	Annotations []string `json:"annotations,omitempty"`
	Subject     string   `json:"subject"`
	Property    string   `json:"property"`
	Value       []byte   `json:"value,omitempty"`
}

// NegativeAnnotationAssertion denies an annotation assertion.
type NegativeAnnotationAssertion struct {
	Annotations []string `json:"annotations,omitempty"`
	Subject     string   `json:"subject"`
	Property    string   `json:"property"`
	Value       []byte   `json:"value,omitempty"`
}

// DataPropertyAssertion states that a subject carries a data property with an
// optional serialized target value.
type DataPropertyAssertion struct {
	Annotations []string `json:"annotations,omitempty"`
	Subject     string   `json:"subject"`
	Property    string   `json:"property"`
	Target      []byte   `json:"target,omitempty"`
}

// NegativeDataPropertyAssertion denies a data property assertion.
type NegativeDataPropertyAssertion struct {
	Annotations []string `json:"annotations,omitempty"`
	Subject     string   `json:"subject"`
	Property    string   `json:"property"`
	Target      []byte   `json:"target,omitempty"`
}

func (*Class) EntityKind() Kind                         { return KindClass }
func (*Individual) EntityKind() Kind                    { return KindIndividual }
func (*ClassAssertion) EntityKind() Kind                { return KindClassAssertion }
func (*ObjectPropertyAssertion) EntityKind() Kind       { return KindObjectPropertyAssertion }
func (*Annotation) EntityKind() Kind                    { return KindAnnotation }
func (*AnnotationAssertion) EntityKind() Kind           { return KindAnnotationAssertion }
func (*NegativeAnnotationAssertion) EntityKind() Kind   { return KindNegativeAnnotationAssertion }
func (*DataPropertyAssertion) EntityKind() Kind         { return KindDataPropertyAssertion }
func (*NegativeDataPropertyAssertion) EntityKind() Kind { return KindNegativeDataPropertyAssertion }
