package mrz

import (
	"bytes"
	"encoding/json"
)

// CommonFields holds the data every MRZ format carries.
type CommonFields struct {
	Type                string
	Country             string
	Number              string
	CheckNumber         string
	DateOfBirth         string
	CheckDateOfBirth    string
	Sex                 string
	ExpirationDate      string
	CheckExpirationDate string
	Nationality         string
	Surname             string
	Names               string
}

// FieldData is the per-format field set of a parsed document. The concrete
// type matches Document.Format: TD1Fields, TD2Fields, TD3Fields or MRVFields.
type FieldData interface {
	common() *CommonFields
}

// TD1Fields is the field set of a 3-line ID card MRZ.
type TD1Fields struct {
	CommonFields
	Optional1      string
	Optional2      string
	CheckComposite string
}

// TD2Fields is the field set of a 2-line, 36-column ID card MRZ.
type TD2Fields struct {
	CommonFields
	Optional1      string
	CheckComposite string
}

// TD3Fields is the field set of a passport MRZ.
type TD3Fields struct {
	CommonFields
	PersonalNumber      string
	CheckPersonalNumber string
	CheckComposite      string
}

// MRVFields is the field set of a visa MRZ, both the 44-column MRVA and the
// 36-column MRVB variant. Visas carry no composite check digit.
type MRVFields struct {
	CommonFields
	Optional1 string
}

func (f *TD1Fields) common() *CommonFields { return &f.CommonFields }
func (f *TD2Fields) common() *CommonFields { return &f.CommonFields }
func (f *TD3Fields) common() *CommonFields { return &f.CommonFields }
func (f *MRVFields) common() *CommonFields { return &f.CommonFields }

// Field is one entry of the ordered key/value projection of a document.
type Field struct {
	Key   string
	Value any
}

// FieldList is an ordered sequence of projection entries.
type FieldList []Field

// Get returns the value stored under key, or nil when the key is absent.
func (l FieldList) Get(key string) any {
	for _, f := range l {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Keys returns the projection keys in order.
func (l FieldList) Keys() []string {
	keys := make([]string, len(l))
	for i, f := range l {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON encodes the projection as a JSON object whose keys keep the
// canonical order.
func (l FieldList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
