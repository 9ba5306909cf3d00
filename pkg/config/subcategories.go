package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SubcategoryForm identifies which of the two supported artifact shapes a
// subcategory sequence was written in.
type SubcategoryForm int

const (
	// FormNone means the sequence was absent or empty.
	FormNone SubcategoryForm = iota

	// FormStrings means a plain sequence of name strings.
	FormStrings

	// FormRecords means a sequence of {code?, name} records.
	FormRecords

	// FormMixed means the sequence mixed scalars and records. Both pure
	// forms are permanently supported input; a mix is a validation
	// violation, not a guess about which entries to keep.
	FormMixed
)

// Subcategories is the tagged union of the two subcategory input shapes.
// The artifact may list subcategories as plain strings or as structured
// records; the shape is resolved once at decode time and the offense
// catalog normalizes both to a single record shape for consumers.
type Subcategories struct {
	form    SubcategoryForm
	strings []string
	records []OffenseSubcategory
}

// SubcategoriesOf constructs the record form programmatically (tests,
// fixtures).
func SubcategoriesOf(records ...OffenseSubcategory) Subcategories {
	return Subcategories{form: FormRecords, records: records}
}

// SubcategoryNames constructs the string form programmatically.
func SubcategoryNames(names ...string) Subcategories {
	return Subcategories{form: FormStrings, strings: names}
}

// Form returns the decoded input shape.
func (s *Subcategories) Form() SubcategoryForm {
	return s.form
}

// Len returns the number of subcategory entries.
func (s *Subcategories) Len() int {
	if s.form == FormStrings {
		return len(s.strings)
	}
	return len(s.records)
}

// Strings returns the raw entries of the string form. Empty for other forms.
func (s *Subcategories) Strings() []string {
	return s.strings
}

// Records returns the raw entries of the record form. Empty for other forms.
func (s *Subcategories) Records() []OffenseSubcategory {
	return s.records
}

// Normalized returns the uniform record shape regardless of input form:
// string entries become records with an empty code, order preserved.
func (s *Subcategories) Normalized() []OffenseSubcategory {
	if s.form == FormStrings {
		out := make([]OffenseSubcategory, len(s.strings))
		for i, name := range s.strings {
			out[i] = OffenseSubcategory{Name: name}
		}
		return out
	}
	out := make([]OffenseSubcategory, len(s.records))
	copy(out, s.records)
	return out
}

// UnmarshalYAML decodes either supported sequence shape and tags the result.
// A sequence mixing scalars and mappings decodes as FormMixed so the schema
// validator can report it as a field violation instead of aborting the parse.
func (s *Subcategories) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: subcategories must be a sequence", value.Line)
	}

	var scalars, mappings int
	for _, item := range value.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			scalars++
		case yaml.MappingNode:
			mappings++
		default:
			return fmt.Errorf("line %d: subcategory entries must be strings or records", item.Line)
		}
	}

	switch {
	case scalars == 0 && mappings == 0:
		*s = Subcategories{form: FormNone}
		return nil
	case scalars > 0 && mappings > 0:
		*s = Subcategories{form: FormMixed}
		return nil
	case scalars > 0:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*s = Subcategories{form: FormStrings, strings: names}
		return nil
	default:
		var records []OffenseSubcategory
		if err := value.Decode(&records); err != nil {
			return err
		}
		*s = Subcategories{form: FormRecords, records: records}
		return nil
	}
}

// MarshalYAML re-emits the original input form so round-tripping an artifact
// stays field-for-field compatible.
func (s Subcategories) MarshalYAML() (interface{}, error) {
	switch s.form {
	case FormStrings:
		return s.strings, nil
	case FormRecords:
		return s.records, nil
	default:
		return []string{}, nil
	}
}

// MarshalJSON emits the normalized record shape; JSON output feeds display
// consumers, which must never see the input-form distinction.
func (s Subcategories) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Normalized())
}
