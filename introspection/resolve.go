package introspection

import (
	"errors"
	"fmt"
)

// ErrMalformedSchema reports introspection data that violates a structural
// assumption, such as a wrapper chain with no terminal named type.
var ErrMalformedSchema = errors.New("malformed introspection schema")

// maxWrapperDepth bounds wrapper unwrapping. A conforming endpoint never
// nests more than a handful of LIST/NON_NULL layers; anything deeper is
// treated as malformed rather than walked indefinitely.
const maxWrapperDepth = 16

// NamedType is a TypeRef with its wrapper chain resolved away.
type NamedType struct {
	Name      string
	Kind      TypeKind
	IsList    bool
	IsNonNull bool
}

// String reconstructs a display form such as "String!", "[Int]" or
// "[order_item]!". Only the outermost list and non-null markers are
// rendered; interior non-null placement is collapsed.
func (n NamedType) String() string {
	s := n.Name
	if n.IsList {
		s = "[" + s + "]"
	}
	if n.IsNonNull {
		s += "!"
	}

	return s
}

// ResolveRef unwraps LIST and NON_NULL layers until the named terminal
// node remains. The chain must terminate in a named node within
// maxWrapperDepth layers or ErrMalformedSchema is returned.
func ResolveRef(ref *TypeRef) (NamedType, error) {
	if ref == nil {
		return NamedType{}, fmt.Errorf("nil type reference: %w", ErrMalformedSchema)
	}

	var resolved NamedType
	node := ref
	for depth := 0; depth <= maxWrapperDepth; depth++ {
		switch node.Kind {
		case TypeKindNonNull:
			resolved.IsNonNull = true
			node = node.OfType
		case TypeKindList:
			resolved.IsList = true
			node = node.OfType
		default:
			if node.Name == nil || *node.Name == "" {
				return NamedType{}, fmt.Errorf("wrapper chain ends without a name: %w", ErrMalformedSchema)
			}
			resolved.Name = *node.Name
			resolved.Kind = node.Kind

			return resolved, nil
		}

		if node == nil {
			return NamedType{}, fmt.Errorf("wrapper with no inner type: %w", ErrMalformedSchema)
		}
	}

	return NamedType{}, fmt.Errorf("wrapper chain exceeds depth %d: %w", maxWrapperDepth, ErrMalformedSchema)
}
