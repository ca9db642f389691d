package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/billythedummy/ta-go/pkg/indicator"
)

func TestMemoryService(t *testing.T) {
	t.Run("load_empty", func(t *testing.T) {
		service := NewMemoryService()
		store := service.NewStore("test")

		j := 0
		err := store.Load(&j)
		assert.Error(t, err)
	})

	t.Run("save_and_load", func(t *testing.T) {
		service := NewMemoryService()
		store := service.NewStore("test")

		i := 3
		err := store.Save(i)

		assert.NoError(t, err)

		var j = 0
		err = store.Load(&j)
		assert.NoError(t, err)
		assert.Equal(t, i, j)
	})
}

func TestJsonCheckpointService_DetectorRoundTrip(t *testing.T) {
	service := &JsonCheckpointService{Directory: t.TempDir()}
	store := service.NewStore("wfractal", "BTCUSDT", "1m")

	var empty indicator.WilliamsFractal
	err := store.Load(&empty)
	assert.Error(t, err)
	assert.EqualError(t, ErrCheckpointNotExists, err.Error())

	inc := indicator.NewWilliamsFractal(indicator.StrictRule{},
		[4]float64{4, 3, 2, 3},
		[4]float64{3, 2, 1, 2},
		[4]float64{4, 3, 2, 2},
		[4]float64{3, 2, 1, 3},
	)
	inc.Update(3, 4, 3, 4)

	err = store.Save(inc)
	assert.NoError(t, err)

	restored := indicator.NewWilliamsFractalSeedHL(indicator.StrictRule{}, 0, 0)
	err = store.Load(restored)
	assert.NoError(t, err)

	// ring buffers, direction flags and cursor phase survive the round trip
	assert.Equal(t, inc.Highs, restored.Highs)
	assert.Equal(t, inc.Lows, restored.Lows)
	assert.Equal(t, inc.Bullish, restored.Bullish)
	assert.Equal(t, inc.Cursor, restored.Cursor)

	// both continue identically from the checkpoint
	assert.Equal(t, inc.Update(4, 5, 4, 5), restored.Update(4, 5, 4, 5))

	err = store.Reset()
	assert.NoError(t, err)

	err = store.Load(restored)
	assert.Error(t, err)
}

func TestCheckpointer(t *testing.T) {
	facade := &CheckpointServiceFacade{Memory: NewMemoryService()}

	t.Run("unsupported_backend", func(t *testing.T) {
		c := &Checkpointer{
			Selector: &CheckpointSelector{StoreID: "test", Type: "etcd"},
			Facade:   facade,
		}
		err := c.Save(3)
		assert.Error(t, err)
	})

	t.Run("empty_store_id", func(t *testing.T) {
		c := &Checkpointer{
			Selector: &CheckpointSelector{Type: "memory"},
			Facade:   facade,
		}
		err := c.Save(3)
		assert.Error(t, err)
	})

	t.Run("memory_round_trip", func(t *testing.T) {
		c := &Checkpointer{
			Selector: &CheckpointSelector{StoreID: "wfractal", Type: "memory"},
			Facade:   facade,
		}

		inc := indicator.NewWilliamsFractalSeedHL(indicator.RelaxedRule{}, 2, 1)
		inc.UpdateHighLow(3, 2)

		err := c.Save(inc, "BTCUSDT", "1m")
		assert.NoError(t, err)

		var restored indicator.WilliamsFractal
		err = c.Load(&restored, "BTCUSDT", "1m")
		assert.NoError(t, err)
		assert.Equal(t, inc.Cursor, restored.Cursor)
		assert.Equal(t, inc.Highs, restored.Highs)
	})
}

func TestRedisCheckpointService(t *testing.T) {
	host, ok := os.LookupEnv("TEST_REDIS_HOST")
	if !ok {
		t.Skip("TEST_REDIS_HOST is not set, skipping the redis checkpoint test")
	}

	redisService := NewRedisCheckpointService(&RedisCheckpointConfig{
		Host: host,
		Port: "6379",
		DB:   0,
	})
	assert.NotNil(t, redisService)

	store := redisService.NewStore("wfractal", "test")
	assert.NotNil(t, store)

	err := store.Reset()
	assert.NoError(t, err)

	var cursor int
	err = store.Load(&cursor)
	assert.Error(t, err)
	assert.EqualError(t, ErrCheckpointNotExists, err.Error())

	cursor = 3
	err = store.Save(&cursor)
	assert.NoError(t, err, "should store value without error")

	var cursor2 int
	err = store.Load(&cursor2)
	assert.NoError(t, err, "should load value without error")
	assert.Equal(t, cursor, cursor2)

	err = store.Reset()
	assert.NoError(t, err)
}
