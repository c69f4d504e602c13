package introspection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func named(name string, kind TypeKind) *TypeRef {
	return &TypeRef{Kind: kind, Name: strPtr(name)}
}

func nonNull(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeKindNonNull, OfType: inner}
}

func list(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeKindList, OfType: inner}
}

func TestResolveRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  *TypeRef
		want NamedType
	}{
		{
			name: "bare named type",
			ref:  named("String", TypeKindScalar),
			want: NamedType{Name: "String", Kind: TypeKindScalar},
		},
		{
			name: "non-null scalar",
			ref:  nonNull(named("Int", TypeKindScalar)),
			want: NamedType{Name: "Int", Kind: TypeKindScalar, IsNonNull: true},
		},
		{
			name: "list of scalar",
			ref:  list(named("String", TypeKindScalar)),
			want: NamedType{Name: "String", Kind: TypeKindScalar, IsList: true},
		},
		{
			name: "non-null list of non-null",
			ref:  nonNull(list(nonNull(named("order", TypeKindObject)))),
			want: NamedType{Name: "order", Kind: TypeKindObject, IsList: true, IsNonNull: true},
		},
		{
			name: "list of non-null resolves like non-null list",
			ref:  list(nonNull(named("order", TypeKindObject))),
			want: NamedType{Name: "order", Kind: TypeKindObject, IsList: true, IsNonNull: true},
		},
		{
			name: "enum",
			ref:  nonNull(named("order_status", TypeKindEnum)),
			want: NamedType{Name: "order_status", Kind: TypeKindEnum, IsNonNull: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveRef(tt.ref)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRef_Malformed(t *testing.T) {
	t.Parallel()

	deep := named("String", TypeKindScalar)
	for i := 0; i < maxWrapperDepth+2; i++ {
		deep = list(deep)
	}

	tests := []struct {
		name string
		ref  *TypeRef
	}{
		{name: "nil reference", ref: nil},
		{name: "wrapper without inner type", ref: &TypeRef{Kind: TypeKindNonNull}},
		{name: "terminal node without a name", ref: nonNull(&TypeRef{Kind: TypeKindScalar})},
		{name: "wrapper chain over the depth bound", ref: deep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ResolveRef(tt.ref)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedSchema))
		})
	}
}

func TestNamedType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  NamedType
		want string
	}{
		{name: "plain", typ: NamedType{Name: "String"}, want: "String"},
		{name: "non-null", typ: NamedType{Name: "Int", IsNonNull: true}, want: "Int!"},
		{name: "list", typ: NamedType{Name: "String", IsList: true}, want: "[String]"},
		{name: "non-null list", typ: NamedType{Name: "String", IsList: true, IsNonNull: true}, want: "[String]!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.typ.String())
		})
	}
}
