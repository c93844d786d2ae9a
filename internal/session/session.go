// Package session remembers where a beatmap was last previewed and with
// which settings, so reopening it resumes there.
package session

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type Session struct {
	Time       float64 // ms
	Speed      float64
	ScrollTime float64 // ms
	Style      string
}

type Store interface {
	Save(b *beatmap.Beatmap, s Session) error
	// Load returns false when the beatmap has no saved session.
	Load(b *beatmap.Beatmap) (Session, bool, error)
	Close() error
}

type DefaultStore struct {
	db *sql.DB
}

func Open(path string) (*DefaultStore, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, err
	}

	initStatement := `
	create table if not exists sessions
	  (
		  sum text not null primary key,
		  time real,
		  speed real,
		  scroll real,
		  style text
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, errors.Wrap(err, "unable to create sessions table")
	}
	return &DefaultStore{db: db}, nil
}

func (s *DefaultStore) Close() error {
	if nil == s.db {
		return nil
	}
	return s.db.Close()
}

// Hash identifies a beatmap by its notes, so edits start a fresh session.
func Hash(b *beatmap.Beatmap) string {
	data, _ := json.Marshal(struct {
		Keys    float64
		Objects []beatmap.HitObject
	}{b.KeyCount, b.HitObjects})
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultStore) Save(b *beatmap.Beatmap, session Session) error {
	_, err := s.db.Exec(
		"insert or replace into sessions(sum, time, speed, scroll, style) values(?, ?, ?, ?, ?)",
		Hash(b), session.Time, session.Speed, session.ScrollTime, session.Style,
	)
	return errors.Wrap(err, "unable to save session")
}

func (s *DefaultStore) Load(b *beatmap.Beatmap) (Session, bool, error) {
	var session Session
	row := s.db.QueryRow("select time, speed, scroll, style from sessions where sum = ?", Hash(b))
	err := row.Scan(&session.Time, &session.Speed, &session.ScrollTime, &session.Style)
	if err == sql.ErrNoRows {
		return session, false, nil
	}
	if nil != err {
		return session, false, errors.Wrap(err, "unable to load session")
	}
	return session, true, nil
}
