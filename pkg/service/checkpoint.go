package service

import (
	"time"

	"github.com/pkg/errors"
)

// ErrCheckpointNotExists is returned by Store.Load when no checkpoint has
// been saved under the store's key yet.
var ErrCheckpointNotExists = errors.New("checkpoint data does not exist")

// CheckpointService stores indicator state snapshots so a streaming pipeline
// can be torn down and resumed without replaying history.
type CheckpointService interface {
	NewStore(id string, subIDs ...string) Store
}

// Store saves and loads one JSON-serializable value, typically a detector
// keyed by symbol and interval.
type Store interface {
	Load(val interface{}) error
	Save(val interface{}) error
	Reset() error
}

type Expirable interface {
	Expiration() time.Duration
}

type RedisCheckpointConfig struct {
	Host      string `yaml:"host" json:"host" env:"REDIS_HOST"`
	Port      string `yaml:"port" json:"port" env:"REDIS_PORT"`
	Password  string `yaml:"password,omitempty" json:"password,omitempty" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" json:"db" env:"REDIS_DB"`
	Namespace string `yaml:"namespace" json:"namespace" env:"REDIS_NAMESPACE"`
}

type JsonCheckpointConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

type CheckpointServiceFacade struct {
	Redis  *RedisCheckpointService
	Json   *JsonCheckpointService
	Memory *MemoryService
}

// CheckpointSelector names the backend and store a pipeline wants to
// checkpoint into.
type CheckpointSelector struct {
	// StoreID is the store you want to use.
	StoreID string `json:"store" yaml:"store"`

	// Type is the backend type: memory, json or redis
	Type string `json:"type" yaml:"type"`
}

// Checkpointer resolves a selector against a facade.
type Checkpointer struct {
	Selector *CheckpointSelector `json:"checkpoint,omitempty" yaml:"checkpoint,omitempty"`

	Facade *CheckpointServiceFacade `json:"-" yaml:"-"`
}

func (c *Checkpointer) backendService(t string) (service CheckpointService, err error) {
	switch t {
	case "json":
		service = c.Facade.Json

	case "redis":
		service = c.Facade.Redis

	case "memory":
		service = c.Facade.Memory

	default:
		err = errors.Errorf("unsupported checkpoint type %s", t)
	}

	return service, err
}

func (c *Checkpointer) newStore(subIDs []string) (Store, error) {
	service, err := c.backendService(c.Selector.Type)
	if err != nil {
		return nil, err
	}

	if c.Selector.StoreID == "" {
		return nil, errors.New("checkpoint.store can not be empty")
	}

	return service.NewStore(c.Selector.StoreID, subIDs...), nil
}

func (c *Checkpointer) Load(val interface{}, subIDs ...string) error {
	store, err := c.newStore(subIDs)
	if err != nil {
		return err
	}

	return store.Load(val)
}

func (c *Checkpointer) Save(val interface{}, subIDs ...string) error {
	store, err := c.newStore(subIDs)
	if err != nil {
		return err
	}

	return store.Save(val)
}
