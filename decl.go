package goshape

// DeclField pairs a field name with its validator for ordered declaration
// construction.
type DeclField struct {
	Name      string
	Validator Validator
}

// Decl is an immutable field-name -> validator declaration with a stable
// field order. Declarations are created once, at definition time, and never
// mutated afterwards.
type Decl struct {
	names  []string
	fields map[string]Validator
}

// NewDecl builds a declaration from ordered field entries. A repeated name
// keeps its first position and takes the last validator, mirroring map
// assignment semantics.
func NewDecl(fields ...DeclField) *Decl {
	d := &Decl{fields: make(map[string]Validator, len(fields))}
	for _, f := range fields {
		if _, exists := d.fields[f.Name]; !exists {
			d.names = append(d.names, f.Name)
		}
		d.fields[f.Name] = f.Validator
	}
	return d
}

// Names returns the declared field names in declaration order.
func (d *Decl) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Validator returns the validator declared for the field.
func (d *Decl) Validator(name string) (Validator, bool) {
	v, ok := d.fields[name]
	return v, ok
}

// Has reports whether the field is declared.
func (d *Decl) Has(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// Len returns the number of declared fields.
func (d *Decl) Len() int { return len(d.names) }
