package linkedlist

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the list as a JSON array of its values.
func (l *LinkedList[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON replaces the content of the list with the values of a JSON array, null results in an empty list.
func (l *LinkedList[V]) UnmarshalJSON(data []byte) error {
	var values []V
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	l.setValues(values)
	return nil
}

// MarshalYAML encodes the list as a YAML sequence of its values.
func (l *LinkedList[V]) MarshalYAML() (any, error) {
	return l.Values(), nil
}

// UnmarshalYAML replaces the content of the list with the values of a YAML sequence.
func (l *LinkedList[V]) UnmarshalYAML(unmarshal func(any) error) error {
	var values []V
	if err := unmarshal(&values); err != nil {
		return err
	}

	l.setValues(values)
	return nil
}
