package board

// Field is one named text field on a page.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Page is one renderable message body with bounded size. It is the unit
// the reconciler sends, edits and deletes.
type Page struct {
	Title       string
	Description string
	Fields      []Field
}

// FieldGroup is the atomic set of fields describing one user on the armor
// board. All fields of a group always land on the same page.
type FieldGroup struct {
	Fields []Field
}
