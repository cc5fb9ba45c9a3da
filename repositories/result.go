package repositories

import (
	"encoding/json"
	"fmt"
	"game-hub/contract"
	"game-hub/domain"
	"game-hub/errors"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

var _ contract.ResultRepository = ResultRepository{}

type ResultRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitRecords *int
}

func NewResultRepository(db *badger.DB, log *slog.Logger, limitRecords *int) ResultRepository {
	return ResultRepository{db: db, log: log, limitRecords: limitRecords}
}

func sessionKey(id domain.SessionID) []byte {
	return []byte(fmt.Sprintf("session:%s", id))
}

func participantPrefix(id domain.ParticipantID) (string, error) {
	if strings.Contains(string(id), ":") {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidKey, id)
	}
	return fmt.Sprintf("result:%s:", id), nil
}

// Store persists a closed session once, and indexes it for every participant.
// Index keys are formatted as "result:{participant}:{closed_at_padded}:{session}"
// so a prefix scan returns a participant history sorted by closing time.
func (r ResultRepository) Store(record domain.SessionRecord) error {
	prefixes := make([]string, 0, len(record.Participants))
	for _, participant := range lo.Uniq(record.Participants) {
		prefix, err := participantPrefix(participant)
		if err != nil {
			return err
		}
		prefixes = append(prefixes, prefix)
	}
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(sessionKey(record.SessionID), bytes); err != nil {
			return err
		}
		for _, prefix := range prefixes {
			key := fmt.Sprintf("%s%019d:%s", prefix, record.ClosedAt.UnixNano(), record.SessionID)
			if err := txn.Set([]byte(key), []byte(record.SessionID)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r ResultRepository) Get(id domain.SessionID) (domain.SessionRecord, error) {
	var record domain.SessionRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", errors.ErrRecordNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &record)
		})
	})
	return record, err
}

// ListByParticipant returns the most recent records first.
// It stops once the configured limitRecords is reached.
func (r ResultRepository) ListByParticipant(id domain.ParticipantID) ([]domain.SessionRecord, error) {
	key, err := participantPrefix(id)
	if err != nil {
		return nil, err
	}
	var records []domain.SessionRecord
	err = r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(key)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key, then walk backwards
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if r.limitRecords != nil && len(records) == *r.limitRecords {
				r.log.Debug(fmt.Sprintf("Maximum of %d records reached", *r.limitRecords))
				break
			}
			sessionID, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			item, err := txn.Get(sessionKey(domain.SessionID(sessionID)))
			if err != nil {
				return err
			}
			var record domain.SessionRecord
			if err := item.Value(func(value []byte) error {
				return json.Unmarshal(value, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
