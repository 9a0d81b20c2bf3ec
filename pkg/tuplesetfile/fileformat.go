// Package tuplesetfile defines a YAML file format describing a tree of tuple
// sets, along with assertions about how it flattens.
//
// Example:
//
//	bindings:
//	  - y: a
//	merge:
//	  - bindings:
//	      - x: ["1", "2"]
//	assertions:
//	  - variables: [x, y]
//	    expected:
//	      - {x: "1", y: a}
//	      - {x: "2", y: a}
//	  - variables: [x]
//	    expectedCount: 2
package tuplesetfile

import (
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/authzed/tupleset/pkg/tserrors"
)

// File represents the contents of a tuple set file: the root of the tree plus
// the assertions to run against it.
type File struct {
	Node

	// Assertions are checked against the flattened root.
	Assertions []Assertion `yaml:"assertions"`
}

// UnmarshalYAML is a custom unmarshaller.
func (f *File) UnmarshalYAML(node *yamlv3.Node) error {
	if err := f.Node.UnmarshalYAML(node); err != nil {
		return err
	}

	var rest struct {
		Assertions []Assertion `yaml:"assertions"`
	}
	if err := node.Decode(&rest); err != nil {
		return convertYamlError(err)
	}

	f.Assertions = rest.Assertions
	return nil
}

// Node is one level of the tree.
type Node struct {
	// Bindings are the variable bindings of this level, in document order.
	Bindings Bindings `yaml:"bindings"`

	// Merge holds the nested levels. They are merged before the bindings of
	// this level are applied.
	Merge []Node `yaml:"merge"`

	// SourcePosition is the position of the node in the file.
	SourcePosition tserrors.SourcePosition `yaml:"-"`
}

// UnmarshalYAML is a custom unmarshaller.
func (n *Node) UnmarshalYAML(node *yamlv3.Node) error {
	if node.Kind != yamlv3.MappingNode {
		return errorAt(node, node.Value, "expected a mapping with `bindings` and `merge`")
	}

	type rawNode Node
	var raw rawNode
	if err := node.Decode(&raw); err != nil {
		return convertYamlError(err)
	}

	*n = Node(raw)
	n.SourcePosition = sourcePosition(node)
	return nil
}

// Binding is a single variable and value entry.
type Binding struct {
	Variable string
	Value    string

	// SourcePosition is the position of the value in the file.
	SourcePosition tserrors.SourcePosition
}

// Bindings is an ordered list of bindings.
//
// In YAML each entry is a single-key mapping whose value is either a scalar or
// a sequence of scalars, the latter binding the variable once per value:
//
//	- x: "1"
//	- y: [a, b]
type Bindings []Binding

// UnmarshalYAML is a custom unmarshaller.
func (b *Bindings) UnmarshalYAML(node *yamlv3.Node) error {
	if node.Kind != yamlv3.SequenceNode {
		return errorAt(node, node.Value, "bindings must be a list of `variable: value` entries")
	}

	bindings := make(Bindings, 0, len(node.Content))
	for _, entry := range node.Content {
		if entry.Kind != yamlv3.MappingNode || len(entry.Content) != 2 {
			return errorAt(entry, entry.Value, "each binding must be a single `variable: value` entry")
		}

		keyNode, valueNode := entry.Content[0], entry.Content[1]
		variable := keyNode.Value
		if variable == "" {
			return errorAt(keyNode, variable, "binding variable must not be empty")
		}

		switch valueNode.Kind {
		case yamlv3.ScalarNode:
			bindings = append(bindings, Binding{variable, valueNode.Value, sourcePosition(valueNode)})

		case yamlv3.SequenceNode:
			for _, item := range valueNode.Content {
				if item.Kind != yamlv3.ScalarNode {
					return errorAt(item, variable, "values of `%s` must be scalars", variable)
				}
				bindings = append(bindings, Binding{variable, item.Value, sourcePosition(item)})
			}

		default:
			return errorAt(valueNode, variable, "value of `%s` must be a scalar or a list of scalars", variable)
		}
	}

	*b = bindings
	return nil
}

// Assertion describes the expected flattening of the root for a projection.
type Assertion struct {
	// Variables is the projection to flatten.
	Variables []string `yaml:"variables"`

	// Expected are the expected tuples, in order. A nil value skips the check,
	// an empty list expects no tuples.
	Expected []map[string]string `yaml:"expected"`

	// ExpectedCount is the expected number of tuples.
	ExpectedCount *uint64 `yaml:"expectedCount"`

	// SourcePosition is the position of the assertion in the file.
	SourcePosition tserrors.SourcePosition `yaml:"-"`
}

// UnmarshalYAML is a custom unmarshaller.
func (a *Assertion) UnmarshalYAML(node *yamlv3.Node) error {
	type rawAssertion Assertion
	var raw rawAssertion
	if err := node.Decode(&raw); err != nil {
		return convertYamlError(err)
	}

	if raw.Expected == nil && raw.ExpectedCount == nil {
		return errorAt(node, "", "assertion must define `expected` or `expectedCount`")
	}

	*a = Assertion(raw)
	a.SourcePosition = sourcePosition(node)
	return nil
}

// DecodeFile decodes the tuple set file found in the given contents.
func DecodeFile(contents []byte) (*File, error) {
	file := File{}
	if err := yamlv3.Unmarshal(contents, &file); err != nil {
		return nil, convertYamlError(err)
	}
	return &file, nil
}
