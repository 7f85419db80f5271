// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !sqlite3_custom_bindings

package sqlite3_test

import (
	"fmt"
	"log"

	sqlite3 "github.com/vsqlite/sqlite3"
)

func Example() {
	c, err := sqlite3.Open(sqlite3.InMemory, 0)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	if err := c.Exec("CREATE TABLE users (login TEXT, password TEXT)"); err != nil {
		log.Fatal(err)
	}

	s, err := c.Prepare("INSERT INTO users VALUES (?, ?)")
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Execute("phf", "somepassword"); err != nil {
		log.Fatal(err)
	}
	if err := s.Execute("adt", sqlite3.Null[string]{}); err != nil {
		log.Fatal(err)
	}
	s.Close()

	s, err = c.Prepare("SELECT login, password FROM users ORDER BY login")
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	var login string
	var password sqlite3.Null[string]
	for {
		ok, err := s.Fetch(&login, &password)
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			break
		}
		if password.Valid {
			fmt.Printf("%s: %s\n", login, password.V)
		} else {
			fmt.Printf("%s: <no password>\n", login)
		}
	}

	// Output:
	// adt: <no password>
	// phf: somepassword
}
