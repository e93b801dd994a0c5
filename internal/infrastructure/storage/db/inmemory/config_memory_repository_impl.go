package inmemory

import (
	"context"
	"sync"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type configRepositoryImpl struct {
	mtx    sync.RWMutex
	config *domain.Config
}

func NewConfigRepositoryImpl() domain.ConfigRepository {
	return &configRepositoryImpl{}
}

func (r *configRepositoryImpl) InitConfig(
	_ context.Context, config domain.Config,
) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.config != nil {
		return domain.ErrStateAlreadyInitialized
	}

	r.config = &config
	return nil
}

func (r *configRepositoryImpl) GetConfig(
	_ context.Context,
) (*domain.Config, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if r.config == nil {
		return nil, domain.ErrInvalidStateAccount
	}

	config := *r.config
	return &config, nil
}
