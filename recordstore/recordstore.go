// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recordstore stores and looks up per-source record counts.
//
// Counts are kept in a SQL database so the ingestion host does not
// need the (large) source files around to report how many records a
// benchmark transformed. Only sqlite3 and mysql are explicitly
// supported; other database engines receive MySQL syntax which may or
// may not be compatible.
package recordstore

import (
	"database/sql"
	"fmt"
)

// DB is a handle to the record-count store. It is safe for concurrent
// use by multiple goroutines.
type DB struct {
	sql *sql.DB
	// prepared statements
	queryCount *sql.Stmt
	upsert     *sql.Stmt
}

// OpenSQL opens a store backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. The backing table is
// created if it does not exist.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (db *DB) createTables() error {
	const q = `
CREATE TABLE IF NOT EXISTS SourceRecords (
	Source VARCHAR(255) NOT NULL PRIMARY KEY,
	Records BIGINT NOT NULL
)`
	if _, err := db.sql.Exec(q); err != nil {
		return fmt.Errorf("create table: %v", err)
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	db.queryCount, err = db.sql.Prepare("SELECT Records FROM SourceRecords WHERE Source = ?")
	if err != nil {
		return err
	}
	q := "REPLACE INTO SourceRecords (Source, Records) VALUES (?, ?)"
	if driverName == "sqlite3" {
		q = "INSERT OR REPLACE INTO SourceRecords (Source, Records) VALUES (?, ?)"
	}
	db.upsert, err = db.sql.Prepare(q)
	return err
}

// RecordCount returns the stored record count for source, or 0 if the
// source is unknown.
func (db *DB) RecordCount(source string) (int64, error) {
	var n int64
	err := db.queryCount.QueryRow(source).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("record count for %s: %v", source, err)
	}
	return n, nil
}

// SetRecordCount stores the record count for source, replacing any
// previous value.
func (db *DB) SetRecordCount(source string, n int64) error {
	if _, err := db.upsert.Exec(source, n); err != nil {
		return fmt.Errorf("set record count for %s: %v", source, err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.sql.Close()
}
