package introspection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func objectType(name string, fieldCount int) *FullType {
	fields := make([]*FieldValue, fieldCount)
	for i := range fields {
		fields[i] = &FieldValue{Name: "f", Type: *named("String", TypeKindScalar)}
	}

	return &FullType{Kind: TypeKindObject, Name: strPtr(name), Fields: fields}
}

func TestClassifyRoots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		schema       *Schema
		wantQuery    string
		wantMutation string
		wantSuspects []SuspectType
	}{
		{
			name: "canonical roots only, no suspects",
			schema: &Schema{
				QueryType:    &NamedTypeRef{Name: strPtr("query_root")},
				MutationType: &NamedTypeRef{Name: strPtr("mutation_root")},
				Types: FullTypes{
					objectType("query_root", 3),
					objectType("mutation_root", 2),
					objectType("users", 4),
				},
			},
			wantQuery:    "query_root",
			wantMutation: "mutation_root",
		},
		{
			name: "unbound root-like type is reported",
			schema: &Schema{
				QueryType: &NamedTypeRef{Name: strPtr("query_root")},
				Types: FullTypes{
					objectType("query_root", 3),
					objectType("weird_root", 12),
				},
			},
			wantQuery:    "query_root",
			wantSuspects: []SuspectType{{Name: "weird_root", FieldCount: 12}},
		},
		{
			name: "reserved-prefix names are never suspects",
			schema: &Schema{
				QueryType: &NamedTypeRef{Name: strPtr("query_root")},
				Types: FullTypes{
					objectType("query_root", 3),
					objectType("__internal_root", 5),
				},
			},
			wantQuery: "query_root",
		},
		{
			name: "non-object root-like names are ignored",
			schema: &Schema{
				QueryType: &NamedTypeRef{Name: strPtr("query_root")},
				Types: FullTypes{
					objectType("query_root", 3),
					{Kind: TypeKindEnum, Name: strPtr("enum_root")},
				},
			},
			wantQuery: "query_root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			roots := ClassifyRoots(tt.schema)
			require.Equal(t, tt.wantQuery, roots.Query)
			require.Equal(t, tt.wantMutation, roots.Mutation)
			require.Equal(t, tt.wantSuspects, roots.Suspects)
		})
	}
}
