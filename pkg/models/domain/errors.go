package domain

import "fmt"

// ParseError reports an input file that could not be read or is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse document: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError reports a required container element that is absent.
type StructureError struct {
	Element string
	Parent  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("element <%s> not found in <%s>", e.Element, e.Parent)
}

// FieldMissingError reports a required child element or attribute that is absent.
type FieldMissingError struct {
	Field   string
	Element string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("field %q missing on <%s>", e.Field, e.Element)
}

// InvalidAmountError reports a service charge whose text is not a decimal number.
type InvalidAmountError struct {
	Value string
	Err   error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Value, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}
