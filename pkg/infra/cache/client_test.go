package cache

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SetAndGet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	client := NewClientFromRedis(rdb)

	mock.ExpectSet(MenuTreeKey, `[]`, MenuTreeTTL).SetVal("OK")
	mock.ExpectGet(MenuTreeKey).SetVal(`[]`)

	require.NoError(t, client.Set(context.Background(), MenuTreeKey, `[]`, MenuTreeTTL))

	val, err := client.Get(context.Background(), MenuTreeKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Delete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	client := NewClientFromRedis(rdb)

	mock.ExpectDel(MenuTreeKey).SetVal(1)

	require.NoError(t, client.Delete(context.Background(), MenuTreeKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryKey(t *testing.T) {
	assert.Equal(t, "directory:listings:retailer", DirectoryKey("retailer"))
	assert.Equal(t, "directory:listings:all", DirectoryKey(""))
}
