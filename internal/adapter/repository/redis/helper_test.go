package redis

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

// testClient spins up an in-memory redis for the ledger cache and
// idempotency tests and returns a client wired to it. Both the server
// and the client are torn down with the test.
func testClient(t *testing.T) *redislib.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: srv.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return client
}
