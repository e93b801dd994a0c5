package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
)

type repoManager struct {
	store *badgerhold.Store

	configRepository  domain.ConfigRepository
	listingRepository domain.ListingRepository
	receiptRepository domain.ReceiptRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk
// and returns the persistent implementation of ports.RepoManager. It
// expects a base data dir and an optional logger.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	store, err := createDb(baseDbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening marketplace db: %w", err)
	}

	return &repoManager{
		store:             store,
		configRepository:  NewConfigRepositoryImpl(store),
		listingRepository: NewListingRepositoryImpl(store),
		receiptRepository: NewReceiptRepositoryImpl(store),
	}, nil
}

func (m *repoManager) ConfigRepository() domain.ConfigRepository {
	return m.configRepository
}

func (m *repoManager) ListingRepository() domain.ListingRepository {
	return m.listingRepository
}

func (m *repoManager) ReceiptRepository() domain.ReceiptRepository {
	return m.receiptRepository
}

func (m *repoManager) Close() {
	m.store.Close()
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (db *badgerhold.Store, err error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	if dbDir == "" {
		opts.InMemory = true
	}

	db, err = badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})

	return
}
