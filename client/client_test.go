package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Execute(t *testing.T) {
	t.Parallel()

	t.Run("returns the data payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "ListUsers", req.OperationName)
			require.Equal(t, map[string]any{"limit": float64(5)}, req.Variables)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"users":[{"id":"1"}]}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		data, err := c.Execute(context.Background(), "ListUsers", "query ListUsers($limit: Int!) { users(limit: $limit) { id } }", map[string]any{"limit": 5})
		require.NoError(t, err)
		require.JSONEq(t, `{"users":[{"id":"1"}]}`, string(data))
	})

	t.Run("static headers are sent on every request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "topsecret", r.Header.Get("x-hasura-admin-secret"))
			_, _ = w.Write([]byte(`{"data":{}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, WithHeaders(map[string]string{"x-hasura-admin-secret": "topsecret"}))
		_, err := c.Execute(context.Background(), "", "{ __typename }", nil)
		require.NoError(t, err)
	})

	t.Run("joins every backend error message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"field 'users' not found"},{"message":"variable $limit unused"}]}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.Execute(context.Background(), "", "{ users { id } }", nil)
		require.Error(t, err)

		var backendErr *BackendError
		require.ErrorAs(t, err, &backendErr)
		require.Equal(t, "field 'users' not found, variable $limit unused", backendErr.Error())
	})

	t.Run("non-2xx status without a graphql body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.Execute(context.Background(), "", "{ __typename }", nil)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusBadGateway, httpErr.Code)
	})
}

func TestClient_FetchSchema(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "IntrospectionQuery", req.OperationName)

		_, _ = w.Write([]byte(`{"data":{"__schema":{
			"queryType":{"name":"query_root"},
			"mutationType":null,
			"subscriptionType":null,
			"types":[{"kind":"OBJECT","name":"query_root","description":null,
				"fields":[{"name":"users","description":null,"args":[],
					"type":{"kind":"OBJECT","name":"users","ofType":null},
					"isDeprecated":false,"deprecationReason":null}],
				"inputFields":null,"interfaces":[],"enumValues":null,"possibleTypes":null}]
		}}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	schema, err := c.FetchSchema(context.Background())
	require.NoError(t, err)

	require.NotNil(t, schema.QueryType)
	require.Equal(t, "query_root", *schema.QueryType.Name)
	require.Nil(t, schema.MutationType)
	require.Len(t, schema.Types, 1)
	require.Equal(t, "users", schema.Types[0].Fields[0].Name)
}
