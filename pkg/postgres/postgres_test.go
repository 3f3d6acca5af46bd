package postgres

import "testing"

func TestDSN(t *testing.T) {
	t.Run("default sslmode", func(t *testing.T) {
		cfg := Config{Host: "db", Port: 5432, User: "bakery", Pass: "p@ss", DB: "bakery_db"}
		want := "postgres://bakery:p%40ss@db:5432/bakery_db?sslmode=disable"
		if got := cfg.DSN(); got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("explicit sslmode", func(t *testing.T) {
		cfg := Config{Host: "db", Port: 6543, User: "u", Pass: "p", DB: "d", SSLMode: "require"}
		want := "postgres://u:p@db:6543/d?sslmode=require"
		if got := cfg.DSN(); got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})
}
