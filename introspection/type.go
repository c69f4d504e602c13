package introspection

type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

type FullTypes []*FullType

// NameMap indexes the type list by name. Wrapper kinds (LIST, NON_NULL)
// never appear here because they are unnamed.
func (fs FullTypes) NameMap() map[string]*FullType {
	typeMap := make(map[string]*FullType, len(fs))
	for _, typ := range fs {
		if typ.Name == nil {
			continue
		}
		typeMap[*typ.Name] = typ
	}

	return typeMap
}

type FullType struct {
	Kind          TypeKind      `json:"kind"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Fields        []*FieldValue `json:"fields"`
	InputFields   []*InputValue `json:"inputFields"`
	Interfaces    []*TypeRef    `json:"interfaces"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	PossibleTypes []*TypeRef    `json:"possibleTypes"`
}

type EnumValue struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

type FieldValue struct {
	Name              string        `json:"name"`
	Description       *string       `json:"description"`
	Args              []*InputValue `json:"args"`
	Type              TypeRef       `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason *string       `json:"deprecationReason"`
}

type InputValue struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Type         TypeRef `json:"type"`
	DefaultValue *string `json:"defaultValue"`
}

// TypeRef is the recursive wrapper chain of an introspected type: zero or
// more LIST/NON_NULL layers around exactly one named terminal node.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

type NamedTypeRef struct {
	Name *string `json:"name"`
}

// Schema is the introspected type system of one endpoint.
type Schema struct {
	QueryType        *NamedTypeRef `json:"queryType"`
	MutationType     *NamedTypeRef `json:"mutationType"`
	SubscriptionType *NamedTypeRef `json:"subscriptionType"`
	Types            FullTypes     `json:"types"`
}

// Query is the response envelope of the introspection document.
type Query struct {
	Schema Schema `json:"__schema"`
}

// TypeByName returns the named type, or nil when the schema does not
// declare it.
func (s *Schema) TypeByName(name string) *FullType {
	for _, typ := range s.Types {
		if typ.Name != nil && *typ.Name == name {
			return typ
		}
	}

	return nil
}
