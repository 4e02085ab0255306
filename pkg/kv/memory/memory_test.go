package memory

import (
	"context"
	"testing"

	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingKey(t *testing.T) {
	b := New()
	_, err := b.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestWriteThenRead(t *testing.T) {
	ctx := context.Background()
	b := New()
	require.NoError(t, b.Write(ctx, "k", []byte("v1")))
	require.NoError(t, b.Write(ctx, "k", []byte("v2")))

	got, err := b.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	b := New()
	in := []byte("abc")
	require.NoError(t, b.Write(ctx, "k", in))
	in[0] = 'x'

	got, err := b.Read(ctx, "k")
	require.NoError(t, err)
	got[1] = 'y'

	again, err := b.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
