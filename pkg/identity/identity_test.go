package identity

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	mockkv "github.com/abhishek622/portfolioapp/gen/mock/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var idPattern = regexp.MustCompile(`^user_\d+_[0-9a-z]{9}$`)

func TestGenerateFormat(t *testing.T) {
	id := Generate(time.UnixMilli(1700000000000))
	assert.Regexp(t, idPattern, string(id))
	assert.Contains(t, string(id), "user_1700000000000_")
}

func TestGetOrCreateIsStable(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	p := New(storage, zap.NewNop())

	first := p.GetOrCreate(ctx)
	second := p.GetOrCreate(ctx)
	assert.Equal(t, first, second)

	raw, err := storage.Read(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(raw))
}

func TestGetOrCreateReturnsExistingId(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	require.NoError(t, storage.Write(ctx, StorageKey, []byte("user_1_abcdefghi")))

	assert.Equal(t, "user_1_abcdefghi", string(New(storage, zap.NewNop()).GetOrCreate(ctx)))
}

func TestGetOrCreateDegradesWhenStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mockkv.NewMockBackend(ctrl)
	storage.EXPECT().Read(gomock.Any(), StorageKey).Return(nil, errors.New("disk gone")).Times(2)

	p := New(storage, zap.NewNop())
	first := p.GetOrCreate(ctx)
	second := p.GetOrCreate(ctx)
	assert.Regexp(t, idPattern, string(first))
	assert.Regexp(t, idPattern, string(second))
}

func TestGetOrCreateIgnoresWriteFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mockkv.NewMockBackend(ctrl)
	storage.EXPECT().Read(gomock.Any(), StorageKey).Return(nil, kv.ErrNotFound)
	storage.EXPECT().Write(gomock.Any(), StorageKey, gomock.Any()).Return(errors.New("read-only"))

	assert.Regexp(t, idPattern, string(New(storage, zap.NewNop()).GetOrCreate(ctx)))
}
