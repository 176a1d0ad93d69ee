package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := New(cause, http.StatusBadGateway, RedisErrorMessage)

	assert.Equal(t, "redis operation failed: connection refused", appErr.Error())
	assert.True(t, errors.Is(appErr, cause))

	var target *AppError
	require.True(t, errors.As(appErr, &target))
	assert.Equal(t, http.StatusBadGateway, target.Status)
}

func TestAppErrorWithoutCause(t *testing.T) {
	appErr := New(nil, http.StatusInternalServerError, SystemErrorMessage)
	assert.Equal(t, SystemErrorMessage, appErr.Error())
	assert.Nil(t, appErr.Unwrap())
}

func TestWrapRedis(t *testing.T) {
	assert.Nil(t, WrapRedis(nil))

	notFound := WrapRedis(redis.Nil)
	require.NotNil(t, notFound)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, RedisNotFoundMessage, notFound.Message)

	other := WrapRedis(errors.New("timeout"))
	require.NotNil(t, other)
	assert.Equal(t, http.StatusBadGateway, other.Status)
	assert.Equal(t, RedisErrorMessage, other.Message)
}
