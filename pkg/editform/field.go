package editform

import "fmt"

// FieldIdentifier identifies a single field of a model: the model instance
// and the field name. It is comparable and is used as the key for validation
// messages, so Model must hold a comparable value (usually a pointer).
type FieldIdentifier struct {
	Model     any
	FieldName string
}

// Field creates a FieldIdentifier for the given model and field name.
func Field(model any, name string) FieldIdentifier {
	return FieldIdentifier{Model: model, FieldName: name}
}

// String returns the field name together with the model type, for logs.
func (f FieldIdentifier) String() string {
	return fmt.Sprintf("%T.%s", f.Model, f.FieldName)
}
