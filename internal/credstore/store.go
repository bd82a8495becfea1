// Package credstore reads and writes the on-disk credential table. The
// serve path only ever loads it once into an immutable map; writes
// happen through the CLI, which is the out-of-band provisioning story.
package credstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pitwall/paddock/auth"
)

func openDatabase(path string, readwrite bool) (*sql.DB, error) {
	var connstr string
	if readwrite {
		connstr = fmt.Sprintf("file:%v?_journal=wal&mode=rwc", path)
	} else {
		connstr = fmt.Sprintf("file:%v?mode=ro", path)
	}
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open credential table %v, cause %w", path, err)
	}
	return conn, nil
}

func setup(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `create table if not exists credential(
		username text not null primary key,
		hash text not null)`)
	if err != nil {
		return fmt.Errorf("unable to create credential table, cause %w", err)
	}
	return nil
}

// Load reads the whole credential table into memory. Usernames are
// normalized on the way in so a sloppily provisioned row still matches
// the normalized login form input.
func Load(ctx context.Context, path string) (auth.Credentials, error) {
	db, err := openDatabase(path, false)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	rows, err := db.QueryContext(ctx, `select username, hash from credential`)
	if err != nil {
		return nil, fmt.Errorf("unable to read credential table, cause %w", err)
	}
	defer rows.Close()
	creds := make(auth.Credentials)
	for rows.Next() {
		var username, hash string
		if err := rows.Scan(&username, &hash); err != nil {
			return nil, err
		}
		creds[auth.NormalizeUsername(username)] = hash
	}
	return creds, rows.Err()
}

// Put stores one username/hash pair, replacing any previous entry.
func Put(ctx context.Context, path, username, hash string) error {
	return Import(ctx, path, auth.Credentials{username: hash})
}

// Import stores every entry of creds in one transaction, replacing
// previous entries with the same username. Hashes are taken verbatim,
// which is what lets pre-existing legacy digests survive a bulk load.
func Import(ctx context.Context, path string, creds auth.Credentials) error {
	db, err := openDatabase(path, true)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := setup(ctx, db); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin transaction, cause %w", err)
	}
	defer tx.Rollback()
	for username, hash := range creds {
		_, err = tx.ExecContext(ctx, `insert into credential(username, hash) values (?, ?)
			on conflict (username) do update set hash = excluded.hash`,
			auth.NormalizeUsername(username), hash)
		if err != nil {
			return fmt.Errorf("unable to store credential for %v, cause %w", username, err)
		}
	}
	return tx.Commit()
}
