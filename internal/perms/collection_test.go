// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package perms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CollectionImplies(t *testing.T) {
	t.Parallel()

	c := NewCollection(
		mustNew(t, "/foo/*", "GET,POST"),
		mustNew(t, "*.jsp", ""),
		nil, // dropped
	)
	assert.Equal(t, 2, c.Len())

	tests := []struct {
		name    string
		reqName string
		actions string
		want    bool
	}{
		{
			name:    "covered by the first member",
			reqName: "/foo/bar",
			actions: "GET",
			want:    true,
		},
		{
			name:    "covered by the second member",
			reqName: "/x/y.jsp",
			actions: "DELETE",
			want:    true,
		},
		{
			name:    "method outside the grant",
			reqName: "/foo/bar",
			actions: "DELETE",
			want:    false,
		},
		{
			name:    "resource outside every grant",
			reqName: "/bar",
			actions: "GET",
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Implies(mustNew(t, tt.reqName, tt.actions)))
		})
	}

	t.Run("empty collection implies nothing", func(t *testing.T) {
		assert := assert.New(t)
		empty := NewCollection()
		assert.False(empty.Implies(mustNew(t, "/", "")))
		assert.Equal(0, empty.Len())
	})

	t.Run("add after construction", func(t *testing.T) {
		assert := assert.New(t)
		c := NewCollection()
		c.Add(mustNew(t, "/admin/*", "GET"))
		assert.True(c.Implies(mustNew(t, "/admin/users", "GET")))
	})
}
