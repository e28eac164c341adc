package store

import (
	"encoding/json"
	"errors"
	"time"

	"logtime/logtime"

	"github.com/tidwall/buntdb"
)

type SessionRepository interface {
	logtime.GoalStateRepository

	SaveSessions(login string, ss []logtime.Session, ttl time.Duration) error
	// GetSessions reports ok=false when nothing is cached or the entry expired.
	GetSessions(login string) (ss []logtime.Session, ok bool, err error)
}

func NewSessionRepository(db *buntdb.DB) SessionRepository {
	return &sessionRepository{db: db}
}

type sessionRepository struct {
	db *buntdb.DB
}

const (
	sessionsKeyPrefix  = "sessions:"
	goalStateKeyPrefix = "goal_state:"
)

func (r *sessionRepository) SaveSessions(login string, ss []logtime.Session, ttl time.Duration) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(ss)
		if err != nil {
			return err
		}
		var opts *buntdb.SetOptions
		if ttl > 0 {
			opts = &buntdb.SetOptions{Expires: true, TTL: ttl}
		}
		_, _, err = tx.Set(sessionsKeyPrefix+login, string(bs), opts)
		return err
	})
}

func (r *sessionRepository) GetSessions(login string) ([]logtime.Session, bool, error) {
	var ss []logtime.Session
	found := false
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(sessionsKeyPrefix + login)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(v), &ss); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return ss, found, nil
}

func (r *sessionRepository) SaveGoalState(login string, s logtime.GoalState) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(goalStateKeyPrefix+login, string(bs), nil)
		return err
	})
}

func (r *sessionRepository) GetGoalState(login string) (logtime.GoalState, error) {
	var s logtime.GoalState
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(goalStateKeyPrefix + login)
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &s)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return logtime.GoalState{}, nil
	} else if err != nil {
		return logtime.GoalState{}, err
	}
	return s, nil
}
