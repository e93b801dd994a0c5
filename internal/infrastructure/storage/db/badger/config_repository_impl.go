package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

// configKey is the badgerhold key of the singleton marketplace config.
const configKey = "config"

type configRepositoryImpl struct {
	store *badgerhold.Store
}

func NewConfigRepositoryImpl(store *badgerhold.Store) domain.ConfigRepository {
	return configRepositoryImpl{store: store}
}

func (r configRepositoryImpl) InitConfig(
	_ context.Context, config domain.Config,
) error {
	if err := r.store.Insert(configKey, config); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return domain.ErrStateAlreadyInitialized
		}
		return err
	}
	return nil
}

func (r configRepositoryImpl) GetConfig(
	_ context.Context,
) (*domain.Config, error) {
	var config domain.Config
	if err := r.store.Get(configKey, &config); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrInvalidStateAccount
		}
		return nil, err
	}
	return &config, nil
}
