// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashbidimap

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"sigs.k8s.io/yaml"

	"github.com/odysseythink/bimap/containers"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Map[int, int])(nil)
var _ containers.JSONDeserializer = (*Map[int, int])(nil)

// ToJSON outputs the JSON representation of the map, keeping insertion order.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	return m.forwardMap.MarshalJSON()
}

// FromJSON replaces the content of the map with the input JSON representation, in document order.
// If a value appears under two keys the map is left unchanged and the error wraps maps.ErrAlreadyBound.
func (m *Map[K, V]) FromJSON(data []byte) error {
	decoded := orderedmap.New[K, V]()
	if err := json.Unmarshal(data, decoded); err != nil {
		return err
	}

	staged := New[K, V]()
	for pair := decoded.Oldest(); pair != nil; pair = pair.Next() {
		if _, _, err := staged.Put(pair.Key, pair.Value); err != nil {
			return err
		}
	}

	if m.forwardMap == nil {
		m.init(staged.Size())
	} else {
		m.Clear()
	}
	for key, value := range staged.Entries() {
		m.ForcePut(key, value)
	}
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}

// ToYAML outputs the YAML representation of the map.
func (m *Map[K, V]) ToYAML() ([]byte, error) {
	return yaml.Marshal(m)
}

// FromYAML replaces the content of the map with the input YAML representation, with the same rules as FromJSON.
// YAML mappings are unordered, so entries are inserted in key order.
func (m *Map[K, V]) FromYAML(data []byte) error {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return err
	}
	return m.FromJSON(j)
}
