package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Actor_HasAnyPermission(t *testing.T) {
	tests := []struct {
		name        string
		grants      []string
		permissions []string
		want        bool
	}{
		{"exact match", []string{"acme.blog.access"}, []string{"acme.blog.access"}, true},
		{"case insensitive", []string{"ACME.Blog.Access"}, []string{"acme.blog.access"}, true},
		{"or semantics, one of many", []string{"acme.blog.publish"}, []string{"acme.blog.access", "acme.blog.publish"}, true},
		{"no overlap", []string{"acme.shop.access"}, []string{"acme.blog.access"}, false},
		{"segment glob", []string{"acme.blog.*"}, []string{"acme.blog.access"}, true},
		{"segment glob does not cross segments", []string{"acme.*"}, []string{"acme.blog.access"}, false},
		{"subtree glob", []string{"acme.**"}, []string{"acme.blog.access"}, true},
		{"no grants", nil, []string{"acme.blog.access"}, false},
		{"no permissions requested", []string{"acme.blog.access"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := NewActor("editor", tt.grants...)
			assert.Equal(t, tt.want, actor.HasAnyPermission(tt.permissions))
		})
	}
}

func Test_Actor_Name(t *testing.T) {
	assert.Equal(t, "editor", NewActor("editor").Name())
}

func Test_StaticAuthorizer(t *testing.T) {
	t.Run("ReturnsActor", func(t *testing.T) {
		actor := NewActor("editor", "acme.blog.access")
		auth := NewStaticAuthorizer(actor)

		got, err := auth.CurrentActor(context.Background())
		require.NoError(t, err)
		assert.Equal(t, actor, got)
	})

	t.Run("NilActorMeansNoFiltering", func(t *testing.T) {
		auth := NewStaticAuthorizer(nil)

		got, err := auth.CurrentActor(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
