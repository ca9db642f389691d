package service

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type JsonCheckpointService struct {
	Directory string
}

func (s *JsonCheckpointService) NewStore(id string, subIDs ...string) Store {
	return &JsonStore{
		ID:        id,
		Directory: filepath.Join(append([]string{s.Directory}, subIDs...)...),
	}
}

type JsonStore struct {
	ID        string
	Directory string
}

func (store JsonStore) path() string {
	return filepath.Join(store.Directory, store.ID) + ".json"
}

func (store JsonStore) Reset() error {
	if _, err := os.Stat(store.Directory); os.IsNotExist(err) {
		return nil
	}

	p := store.path()
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(p)
}

func (store JsonStore) Load(val interface{}) error {
	if _, err := os.Stat(store.Directory); os.IsNotExist(err) {
		if err2 := os.MkdirAll(store.Directory, 0777); err2 != nil {
			return errors.Wrapf(err2, "can not create checkpoint directory %s", store.Directory)
		}
	}

	p := store.path()

	if _, err := os.Stat(p); os.IsNotExist(err) {
		return ErrCheckpointNotExists
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return errors.Wrapf(err, "can not read checkpoint file %s", p)
	}

	if len(data) == 0 {
		return ErrCheckpointNotExists
	}

	return json.Unmarshal(data, val)
}

func (store JsonStore) Save(val interface{}) error {
	if _, err := os.Stat(store.Directory); os.IsNotExist(err) {
		if err2 := os.MkdirAll(store.Directory, 0777); err2 != nil {
			return errors.Wrapf(err2, "can not create checkpoint directory %s", store.Directory)
		}
	}

	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	p := store.path()
	return errors.Wrapf(os.WriteFile(p, data, 0666), "can not write checkpoint file %s", p)
}
