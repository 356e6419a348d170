package entity

import (
	"encoding/json"
	"fmt"
)

// wire is the kind-tagged wrapper used for JSON boundary encoding.
type wire struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// factories enumerates the full variant set. Decode is total over it: a kind
// missing here is a model bug, not an input problem.
var factories = map[Kind]func() Entity{
	KindClass:                         func() Entity { return new(Class) },
	KindIndividual:                    func() Entity { return new(Individual) },
	KindClassAssertion:                func() Entity { return new(ClassAssertion) },
	KindObjectPropertyAssertion:       func() Entity { return new(ObjectPropertyAssertion) },
	KindAnnotation:                    func() Entity { return new(Annotation) },
	KindAnnotationAssertion:           func() Entity { return new(AnnotationAssertion) },
	KindNegativeAnnotationAssertion:   func() Entity { return new(NegativeAnnotationAssertion) },
	KindDataPropertyAssertion:         func() Entity { return new(DataPropertyAssertion) },
	KindNegativeDataPropertyAssertion: func() Entity { return new(NegativeDataPropertyAssertion) },
}

// Encode serializes an entity with its kind tag.
func Encode(e Entity) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("entity: cannot encode nil entity")
	}
	kind := e.EntityKind()
	if _, ok := factories[kind]; !ok {
		return nil, fmt.Errorf("entity: unknown kind %q", kind)
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire{Kind: kind, Payload: payload})
}

// Decode deserializes a kind-tagged entity produced by Encode.
func Decode(data []byte) (Entity, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("entity: invalid wrapper: %w", err)
	}
	factory, ok := factories[w.Kind]
	if !ok {
		return nil, fmt.Errorf("entity: unknown kind %q", w.Kind)
	}
	e := factory()
	if err := json.Unmarshal(w.Payload, e); err != nil {
		return nil, fmt.Errorf("entity: invalid %s payload: %w", w.Kind, err)
	}
	return e, nil
}
